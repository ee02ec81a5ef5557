package domain

import "github.com/shopspring/decimal"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusApproved  RentalStatus = "APPROVED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Valid reports whether s is one of the known rental statuses.
func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a rental may move from one status to another.
// COMPLETED and CANCELLED are terminal. Approving an already approved rental
// is allowed so an admin can re-confirm without an error.
func CanTransition(from, to RentalStatus) bool {
	switch from {
	case RentalStatusPending:
		return to == RentalStatusApproved || to == RentalStatusCancelled
	case RentalStatusApproved:
		return to == RentalStatusApproved || to == RentalStatusCompleted || to == RentalStatusCancelled
	}
	return false
}

type Rental struct {
	ID                int32        `json:"id"`
	VehicleID         int32        `json:"vehicle_id"`
	UserID            int32        `json:"user_id"`
	PickupLocationID  int32        `json:"pickup_location_id"`
	DropOffLocationID int32        `json:"drop_off_location_id"`
	RentalDate        string       `json:"rental_date"` // yyyy-mm-dd
	ReturnDate        string       `json:"return_date"` // yyyy-mm-dd, exclusive
	RequestDate       string       `json:"request_date"`
	Status            RentalStatus `json:"status"`
	AdminActionDate   *string      `json:"admin_action_date,omitempty"`
	AdminUserID       *int32       `json:"admin_user_id,omitempty"`
	// ProductIDs holds the assigned add-on products. Assignments are replaced
	// wholesale on every update.
	ProductIDs []int32 `json:"product_ids,omitempty"`
	// TotalPrice is computed from the vehicle's daily fee and the assigned
	// add-on fees. It is derived, never persisted.
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedOn  string          `json:"created_on"`
	UpdatedOn  string          `json:"updated_on"`
}

// SameBooking reports whether other carries the same booking fields as r,
// ignoring status and bookkeeping columns. Used to detect status-only edits.
func (r *Rental) SameBooking(other *Rental) bool {
	return r.VehicleID == other.VehicleID &&
		r.UserID == other.UserID &&
		r.PickupLocationID == other.PickupLocationID &&
		r.DropOffLocationID == other.DropOffLocationID &&
		r.RentalDate == other.RentalDate &&
		r.ReturnDate == other.ReturnDate
}

type RentalFilter struct {
	UserID      int32
	Status      RentalStatus
	SearchQuery string
	Page        int32
	PageSize    int32
}
