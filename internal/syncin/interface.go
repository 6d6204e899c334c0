package syncin

import (
	"context"

	"relationship-os/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Push ingests a batch of items from a sync agent: matches or creates the
	// person, dedupes on (source, external_id), infers missing conversation
	// dates from transcripts, and records the batch.
	Push(ctx context.Context, sc model.Scope, input PushInput) (PushOutput, error)

	// Transcribe turns a pushed audio recording into a transcript and stores
	// it as an interaction, with the same dedupe and person matching as Push.
	Transcribe(ctx context.Context, sc model.Scope, input TranscribeInput) (TranscribeOutput, error)

	// ListBatches returns recent batch records, newest first. Admin only.
	ListBatches(ctx context.Context, sc model.Scope, input ListBatchesInput) ([]Batch, error)
}
