package domain

import "github.com/shopspring/decimal"

// AdditionalProduct is an optional priced extra (child seat, GPS, extra
// driver) attachable to a rental.
type AdditionalProduct struct {
	ID        int32           `json:"id"`
	Name      string          `json:"name"`
	Fee       decimal.Decimal `json:"fee"`
	Active    bool            `json:"active"`
	CreatedOn string          `json:"created_on"`
}
