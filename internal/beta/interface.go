package beta

import (
	"context"

	"relationship-os/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Admin whitelist management
	Add(ctx context.Context, sc model.Scope, input AddEntryInput) (AddEntryOutput, error)
	List(ctx context.Context, sc model.Scope) (ListEntriesOutput, error)
	Remove(ctx context.Context, sc model.Scope, email string) error

	// Check reports whether the email may pass the beta gate.
	Check(ctx context.Context, email string) (bool, error)
}
