package utils

import (
	"fmt"
	"time"

	"carrental-backend/internal/domain"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// RentalDays returns the number of whole days between rentalDate (inclusive)
// and returnDate (exclusive). A rental is at least one day, so the return
// date must be strictly after the rental date. The window always comes from
// client input, so every rejection carries domain.ErrBusinessRule.
func RentalDays(rentalDate, returnDate string) (int32, error) {
	start, err := ParseDate(rentalDate)
	if err != nil {
		return 0, fmt.Errorf("rental date: %v: %w", err, domain.ErrBusinessRule)
	}
	end, err := ParseDate(returnDate)
	if err != nil {
		return 0, fmt.Errorf("return date: %v: %w", err, domain.ErrBusinessRule)
	}
	days := int32(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 0, fmt.Errorf("return date must be after rental date: %w", domain.ErrBusinessRule)
	}
	return days, nil
}

// ComputeTotal prices a rental: days x daily fee plus the sum of the assigned
// add-on product fees. The vehicle's discount rate is deliberately not
// applied here; it is stored and surfaced as informational only.
func ComputeTotal(rentalDate, returnDate string, dailyFee decimal.Decimal, productFees []decimal.Decimal) (decimal.Decimal, error) {
	days, err := RentalDays(rentalDate, returnDate)
	if err != nil {
		return decimal.Zero, err
	}
	total := dailyFee.Mul(decimal.NewFromInt32(days))
	for _, fee := range productFees {
		total = total.Add(fee)
	}
	return total, nil
}
