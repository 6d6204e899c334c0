package usecase

import (
	"context"

	"relationship-os/internal/model"
	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

// Search finds a person by the provided hints, most reliable field first:
// phone, then email, then exact name. Returns Matched=false when nothing hits.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input person.SearchPersonInput) (person.SearchPersonOutput, error) {
	lookups := []repo.GetOnePersonOptions{
		{UserID: sc.UserID, Phone: input.Phone},
		{UserID: sc.UserID, Email: input.Email},
		{UserID: sc.UserID, Name: input.Name},
	}

	for _, opt := range lookups {
		if opt.Phone == "" && opt.Email == "" && opt.Name == "" {
			continue
		}
		p, err := uc.repo.GetOnePerson(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "person.uc.Search GetOnePerson: %v", err)
			return person.SearchPersonOutput{}, err
		}
		if p.ID != "" {
			return person.SearchPersonOutput{Person: p, Matched: true}, nil
		}
	}

	return person.SearchPersonOutput{}, nil
}
