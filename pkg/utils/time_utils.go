package utils

import (
	"fmt"
	"time"
)

// NormalizeTravelDate sanitizes a model-produced travel date. Full ISO dates
// pass through unchanged; a bare year-month gets the mid-month default (the
// 15th). Anything else is rejected so an invalid date never lands in trip
// state.
func NormalizeTravelDate(s string) (string, bool) {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s, true
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return fmt.Sprintf("%s-15", t.Format("2006-01")), true
	}
	return "", false
}
