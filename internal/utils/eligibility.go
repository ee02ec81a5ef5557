package utils

import "time"

// YearsBetween returns full calendar years elapsed from 'from' to 'asOf':
// year subtraction, minus one if the anniversary has not yet occurred in the
// asOf year.
func YearsBetween(from, asOf time.Time) int32 {
	years := int32(asOf.Year() - from.Year())
	if asOf.YearDay() < from.YearDay() {
		years--
	}
	return years
}

// MeetsRequirements decides whether a renter may rent a vehicle: computed age
// must reach the vehicle's minimum driver age and the license must have been
// held for at least the vehicle's minimum number of years. Pure; no side
// effects.
func MeetsRequirements(dateOfBirth, licenseIssueDate, asOf time.Time, minDriverAge, minLicenseYears int32) bool {
	age := YearsBetween(dateOfBirth, asOf)
	licenseYears := YearsBetween(licenseIssueDate, asOf)
	return age >= minDriverAge && licenseYears >= minLicenseYears
}
