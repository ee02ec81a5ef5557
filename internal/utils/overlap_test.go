package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"Identical Windows", "2026-01-10", "2026-01-13", "2026-01-10", "2026-01-13", true},
		{"Existing Contained In Candidate", "2026-01-11", "2026-01-12", "2026-01-10", "2026-01-13", true},
		{"Candidate Contained In Existing", "2026-01-10", "2026-01-13", "2026-01-11", "2026-01-12", true},
		{"Overlap At Start", "2026-01-08", "2026-01-11", "2026-01-10", "2026-01-13", true},
		{"Overlap At End", "2026-01-12", "2026-01-15", "2026-01-10", "2026-01-13", true},
		{"Single Shared Day", "2026-01-12", "2026-01-13", "2026-01-12", "2026-01-14", true},
		{"Return Day Equals Pickup Day", "2026-01-08", "2026-01-10", "2026-01-10", "2026-01-13", false},
		{"Pickup Day Equals Return Day", "2026-01-13", "2026-01-15", "2026-01-10", "2026-01-13", false},
		{"Disjoint", "2026-01-01", "2026-01-03", "2026-01-10", "2026-01-13", false},
		{"Across Month Boundary", "2026-01-30", "2026-02-02", "2026-02-01", "2026-02-05", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// The predicate is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
