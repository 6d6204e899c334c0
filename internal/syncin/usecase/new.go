package usecase

import (
	"context"
	"net/http"
	"time"

	"relationship-os/internal/analytics"
	"relationship-os/internal/dateinfer"
	interactionRepo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/person"
	"relationship-os/internal/syncin/repository"
	"relationship-os/pkg/llmprovider"
	"relationship-os/pkg/log"
)

// DateInferrer resolves when a conversation happened from its transcript.
// *dateinfer.Engine satisfies it.
type DateInferrer interface {
	InferAt(ctx context.Context, transcript string, anchor time.Time) dateinfer.Result
}

// Generator is the LLM surface used for audio transcription.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of syncin.UseCase.
type implUseCase struct {
	batchRepo       repository.Repository
	interactionRepo interactionRepo.Repository
	personUC        person.UseCase
	inferrer        DateInferrer
	llm             Generator
	tracker         analytics.Tracker
	httpClient      *http.Client
	l               log.Logger
	now             func() time.Time
}

// New creates a new sync ingestion UseCase implementation. inferrer, llm and
// tracker may be nil; without llm the transcribe operation is unavailable.
func New(
	batchRepo repository.Repository,
	iRepo interactionRepo.Repository,
	personUC person.UseCase,
	inferrer DateInferrer,
	llm Generator,
	tracker analytics.Tracker,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		batchRepo:       batchRepo,
		interactionRepo: iRepo,
		personUC:        personUC,
		inferrer:        inferrer,
		llm:             llm,
		tracker:         tracker,
		httpClient:      &http.Client{Timeout: audioFetchTimeout},
		l:               l,
		now:             time.Now,
	}
}
