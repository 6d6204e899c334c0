package datemath_test

import (
	"testing"
	"time"

	"relationship-os/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Next Monday",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed + 5 = Monday
		},
		{
			name:     "Next Wednesday wraps a full week",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Mixed case with whitespace",
			relative: "  Next Friday  ",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Unknown falls back to today",
			relative: "whenever",
			want:     startOfBase,
		},
		{
			name:     "Invalid duration",
			relative: "in some days",
			wantErr:  true,
		},
		{
			name:     "Unknown weekday",
			relative: "next someday",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	got := parser.EndOfDay(start)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay(%v) = %v, want %v", start, got, want)
	}
}
