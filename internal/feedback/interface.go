package feedback

import (
	"context"

	"relationship-os/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit records a piece of user feedback.
	Submit(ctx context.Context, sc model.Scope, input SubmitFeedbackInput) (SubmitFeedbackOutput, error)

	// List returns submitted feedback, newest first. Admin only.
	List(ctx context.Context, sc model.Scope, input ListFeedbackInput) (ListFeedbackOutput, error)
}
