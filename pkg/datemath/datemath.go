package datemath

import "time"

// Noon returns the same calendar day as t with the time-of-day fixed to
// 12:00:00 in t's location. Pinning to midday keeps day arithmetic stable
// across DST transitions and midnight boundary effects.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// DaysBefore returns the calendar day n days before anchor, normalized to
// local noon. n must be non-negative; negative values are treated as 0.
func DaysBefore(anchor time.Time, n int) time.Time {
	if n < 0 {
		n = 0
	}
	return Noon(anchor.AddDate(0, 0, -n))
}
