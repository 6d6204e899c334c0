package datemath_test

import (
	"testing"
	"time"

	"relationship-os/pkg/datemath"
)

func TestNoon(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
	}{
		{"early morning", time.Date(2024, 6, 10, 0, 15, 0, 0, time.UTC)},
		{"mid morning", time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)},
		{"just before midnight", time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.Noon(tt.in)
			want := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("Noon(%v) = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestDaysBefore(t *testing.T) {
	anchor := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		n    int
		want time.Time
	}{
		{"today", 0, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{"yesterday", 1, time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)},
		{"a week ago", 7, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)},
		{"across month boundary", 10, time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)},
		{"negative clamped to anchor day", -3, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.DaysBefore(anchor, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("DaysBefore(%v, %d) = %v, want %v", anchor, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBefore_IgnoresAnchorTimeOfDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 23, 58, 0, 0, time.UTC)

	if !datemath.DaysBefore(a, 3).Equal(datemath.DaysBefore(b, 3)) {
		t.Errorf("result must not depend on the anchor's time-of-day")
	}
}
