package person

import (
	"context"

	"relationship-os/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Person CRUD
	Create(ctx context.Context, sc model.Scope, input CreatePersonInput) (CreatePersonOutput, error)
	List(ctx context.Context, sc model.Scope, input ListPersonsInput) (ListPersonsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailPersonOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdatePersonInput) (UpdatePersonOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Search finds a person by phone/email/name, most reliable field first.
	// Used by the sync ingestion flow to attach incoming items to a contact.
	Search(ctx context.Context, sc model.Scope, input SearchPersonInput) (SearchPersonOutput, error)
}
