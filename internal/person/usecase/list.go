package usecase

import (
	"context"

	"relationship-os/internal/model"
	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

// List returns a paginated list of the scoped user's Persons.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input person.ListPersonsInput) (person.ListPersonsOutput, error) {
	persons, total, err := uc.repo.ListPersons(ctx, repo.ListPersonsOptions{
		UserID: sc.UserID,
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.List ListPersons: %v", err)
		return person.ListPersonsOutput{}, err
	}

	return person.ListPersonsOutput{
		Persons: persons,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}
