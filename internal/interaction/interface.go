package interaction

import (
	"context"

	"relationship-os/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Interaction CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInteractionInput) (CreateInteractionOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInteractionsInput) (ListInteractionsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailInteractionOutput, error)
	UpdateFord(ctx context.Context, sc model.Scope, input UpdateFordInput) (UpdateFordOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// SuggestFollowUp asks the LLM for a next-touchpoint suggestion based on
	// the interaction's content, resolves the suggested timing to an absolute
	// date, and optionally creates a calendar reminder.
	SuggestFollowUp(ctx context.Context, sc model.Scope, interactionID string) (SuggestFollowUpOutput, error)
}
