package analytics

import "time"

// Event is a single usage analytics record.
type Event struct {
	ID         string
	UserID     string
	Name       string
	Properties map[string]any
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type TrackEventInput struct {
	Name       string
	Properties map[string]any
}

// --- UseCase Outputs ---

type TrackEventOutput struct {
	Event Event
}

// SummaryRow is a per-name, per-day event count.
type SummaryRow struct {
	Name  string
	Day   time.Time
	Count int
}

type SummaryOutput struct {
	Days  int
	Total int
	Rows  []SummaryRow
}
