package usecase

import (
	"context"

	"relationship-os/internal/model"
)

// coalesce returns the new value when provided, otherwise the existing one.
// Used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// track records a usage event when analytics is wired. Never blocks the
// calling flow.
func (uc *implUseCase) track(ctx context.Context, sc model.Scope, name string, properties map[string]any) {
	if uc.tracker == nil {
		return
	}
	uc.tracker.Track(ctx, sc, name, properties)
}
