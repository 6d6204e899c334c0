package repository

// CreateEventOptions holds parameters for inserting an analytics event.
// ID is assigned by the caller (uuid).
type CreateEventOptions struct {
	ID         string
	UserID     string
	Name       string
	Properties map[string]any
}

// SummarizeEventsOptions bounds the aggregation window.
type SummarizeEventsOptions struct {
	Days int
}
