package usecase

import (
	"context"
	"strings"

	"relationship-os/internal/model"
	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

// Create creates a new Person owned by the scoped user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input person.CreatePersonInput) (person.CreatePersonOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return person.CreatePersonOutput{}, person.ErrNameRequired
	}

	p, err := uc.repo.CreatePerson(ctx, repo.CreatePersonOptions{
		UserID:  sc.UserID,
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		Company: input.Company,
		Notes:   input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.Create CreatePerson: %v", err)
		return person.CreatePersonOutput{}, err
	}

	return person.CreatePersonOutput{Person: p}, nil
}
