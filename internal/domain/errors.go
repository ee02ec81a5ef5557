package domain

import "errors"

// Business errors shared by repositories and services. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available for the requested dates")
	ErrVehicleNotAtPickup = errors.New("vehicle is not at the pickup location")
	ErrNotEligible        = errors.New("renter does not meet the vehicle's age or license requirements")
	ErrInvalidTransition  = errors.New("invalid rental status transition")
	ErrRentalCompleted    = errors.New("a completed rental cannot be modified")
	ErrForbidden          = errors.New("operation not permitted")
	ErrBusinessRule       = errors.New("business rule violation")
)
