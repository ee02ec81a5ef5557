package utils

// Overlaps reports whether the half-open date windows [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Dates are yyyy-mm-dd strings, so
// lexicographic comparison is date order. The rental repository applies the
// same predicate in SQL when it checks vehicle availability; a booking that
// ends on the day another starts does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
