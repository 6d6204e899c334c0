package usecase

import (
	"context"

	"relationship-os/internal/model"
	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

// Detail retrieves a single Person by ID. Returns ErrPersonNotFound when the
// ID does not exist within the user's scope.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (person.DetailPersonOutput, error) {
	p, err := uc.repo.GetOnePerson(ctx, repo.GetOnePersonOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.Detail GetOnePerson: %v", err)
		return person.DetailPersonOutput{}, err
	}
	if p.ID == "" {
		return person.DetailPersonOutput{}, person.ErrPersonNotFound
	}
	return person.DetailPersonOutput{Person: p}, nil
}

// Update modifies an existing Person (partial update).
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input person.UpdatePersonInput) (person.UpdatePersonOutput, error) {
	existing, err := uc.repo.GetOnePerson(ctx, repo.GetOnePersonOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.Update GetOnePerson: %v", err)
		return person.UpdatePersonOutput{}, err
	}
	if existing.ID == "" {
		return person.UpdatePersonOutput{}, person.ErrPersonNotFound
	}

	p, err := uc.repo.UpdatePerson(ctx, repo.UpdatePersonOptions{
		UserID:  sc.UserID,
		ID:      input.ID,
		Name:    uc.coalesce(input.Name, existing.Name),
		Phone:   uc.coalesce(input.Phone, existing.Phone),
		Email:   uc.coalesce(input.Email, existing.Email),
		Company: uc.coalesce(input.Company, existing.Company),
		Notes:   uc.coalesce(input.Notes, existing.Notes),
	})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.Update UpdatePerson: %v", err)
		return person.UpdatePersonOutput{}, err
	}
	return person.UpdatePersonOutput{Person: p}, nil
}

// Delete removes a Person by ID. Returns ErrPersonNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOnePerson(ctx, repo.GetOnePersonOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "person.uc.Delete GetOnePerson: %v", err)
		return err
	}
	if existing.ID == "" {
		return person.ErrPersonNotFound
	}
	if err := uc.repo.DeletePerson(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "person.uc.Delete DeletePerson: %v", err)
		return err
	}
	return nil
}
