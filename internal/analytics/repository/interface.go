package repository

import (
	"context"

	"relationship-os/internal/analytics"
)

// Repository is the composed interface for the analytics domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for analytics events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (analytics.Event, error)
	SummarizeEvents(ctx context.Context, opt SummarizeEventsOptions) ([]analytics.SummaryRow, int, error)
}
