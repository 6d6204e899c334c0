package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"relationship-os/internal/analytics"
	repo "relationship-os/internal/analytics/repository"
	"relationship-os/internal/model"
	"relationship-os/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	repo repo.Repository
	l    log.Logger
}

// New creates a new analytics UseCase implementation.
func New(r repo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: r, l: l}
}

// Track records a usage event from another domain. Fire and forget: failures
// are logged and swallowed so callers never block on analytics.
func (uc *implUseCase) Track(ctx context.Context, sc model.Scope, name string, properties map[string]any) {
	if _, err := uc.TrackEvent(ctx, sc, analytics.TrackEventInput{Name: name, Properties: properties}); err != nil {
		uc.l.Warnf(ctx, "analytics.uc.Track %q: %v", name, err)
	}
}

// TrackEvent records a usage event and returns it.
func (uc *implUseCase) TrackEvent(ctx context.Context, sc model.Scope, input analytics.TrackEventInput) (analytics.TrackEventOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return analytics.TrackEventOutput{}, analytics.ErrNameRequired
	}

	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		Name:       name,
		Properties: input.Properties,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.uc.TrackEvent CreateEvent: %v", err)
		return analytics.TrackEventOutput{}, err
	}
	return analytics.TrackEventOutput{Event: event}, nil
}

// Summary aggregates event counts by name and day over the last N days.
// Days is clamped to [1, 90], defaulting to 7.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, days int) (analytics.SummaryOutput, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	rows, total, err := uc.repo.SummarizeEvents(ctx, repo.SummarizeEventsOptions{Days: days})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.uc.Summary SummarizeEvents: %v", err)
		return analytics.SummaryOutput{}, err
	}
	return analytics.SummaryOutput{Days: days, Total: total, Rows: rows}, nil
}
