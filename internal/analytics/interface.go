package analytics

import (
	"context"

	"relationship-os/internal/model"
)

// Tracker is the fire-and-forget surface other domains use to record usage.
// Failures are logged, never propagated.
type Tracker interface {
	Track(ctx context.Context, sc model.Scope, name string, properties map[string]any)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Tracker

	// TrackEvent records a client-reported event.
	TrackEvent(ctx context.Context, sc model.Scope, input TrackEventInput) (TrackEventOutput, error)

	// Summary aggregates event counts by name and day over the last N days.
	Summary(ctx context.Context, sc model.Scope, days int) (SummaryOutput, error)
}
