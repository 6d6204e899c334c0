package usecase

import (
	"context"
	"time"

	"relationship-os/internal/analytics"
	"relationship-os/internal/dateinfer"
	"relationship-os/internal/interaction/repository"
	"relationship-os/internal/person"
	"relationship-os/pkg/datemath"
	"relationship-os/pkg/gcalendar"
	"relationship-os/pkg/llmprovider"
	"relationship-os/pkg/log"
)

// DateInferrer resolves when a conversation happened from its transcript.
// *dateinfer.Engine satisfies it.
type DateInferrer interface {
	InferAt(ctx context.Context, transcript string, anchor time.Time) dateinfer.Result
}

// Generator is the LLM surface used for follow-up suggestions.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Calendar creates reminder events. *gcalendar.Client satisfies it; nil means
// calendar integration is not configured.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of interaction.UseCase.
type implUseCase struct {
	repo     repository.Repository
	personUC person.UseCase
	inferrer DateInferrer
	llm      Generator
	dateMath *datemath.Parser
	calendar Calendar
	tracker  analytics.Tracker
	timezone string
	l        log.Logger
	now      func() time.Time
}

// New creates a new interaction UseCase implementation. calendar and tracker
// may be nil; inferrer may be nil to disable transcript date inference.
func New(
	repo repository.Repository,
	personUC person.UseCase,
	inferrer DateInferrer,
	llm Generator,
	dateMath *datemath.Parser,
	calendar Calendar,
	tracker analytics.Tracker,
	timezone string,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		personUC: personUC,
		inferrer: inferrer,
		llm:      llm,
		dateMath: dateMath,
		calendar: calendar,
		tracker:  tracker,
		timezone: timezone,
		l:        l,
		now:      time.Now,
	}
}
