package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// ParsePaymentMethod validates a free-text method at the boundary. Unknown
// values are a typed error, never a runtime parse failure downstream.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusCompleted, PaymentStatusRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

type Payment struct {
	ID             int32           `json:"id"`
	RentalID       int32           `json:"rental_id"`
	Amount         decimal.Decimal `json:"amount"`
	Method         PaymentMethod   `json:"method"`
	Status         PaymentStatus   `json:"status"`
	TransactionRef string          `json:"transaction_ref"`
	CreatedOn      string          `json:"created_on"`
}
