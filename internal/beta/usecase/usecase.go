package usecase

import (
	"context"
	"strings"

	"relationship-os/internal/beta"
	repo "relationship-os/internal/beta/repository"
	"relationship-os/internal/model"
	"relationship-os/pkg/log"
)

// implUseCase is the private implementation of beta.UseCase.
type implUseCase struct {
	repo repo.Repository
	l    log.Logger
}

// New creates a new beta UseCase implementation.
func New(r repo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: r, l: l}
}

// Add whitelists an email. Returns ErrDuplicateEmail when already present.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input beta.AddEntryInput) (beta.AddEntryOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return beta.AddEntryOutput{}, beta.ErrInvalidEmail
	}

	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "beta.uc.Add GetOneEntry: %v", err)
		return beta.AddEntryOutput{}, err
	}
	if existing.ID != "" {
		return beta.AddEntryOutput{}, beta.ErrDuplicateEmail
	}

	entry, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		Email:   email,
		Note:    input.Note,
		AddedBy: sc.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "beta.uc.Add CreateEntry: %v", err)
		return beta.AddEntryOutput{}, err
	}
	return beta.AddEntryOutput{Entry: entry}, nil
}

// List returns every whitelist entry.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (beta.ListEntriesOutput, error) {
	entries, total, err := uc.repo.ListEntries(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "beta.uc.List ListEntries: %v", err)
		return beta.ListEntriesOutput{}, err
	}
	return beta.ListEntriesOutput{Entries: entries, Total: total}, nil
}

// Remove deletes a whitelist entry by email.
func (uc *implUseCase) Remove(ctx context.Context, sc model.Scope, email string) error {
	email = normalizeEmail(email)
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "beta.uc.Remove GetOneEntry: %v", err)
		return err
	}
	if existing.ID == "" {
		return beta.ErrEntryNotFound
	}
	if err := uc.repo.DeleteEntry(ctx, email); err != nil {
		uc.l.Errorf(ctx, "beta.uc.Remove DeleteEntry: %v", err)
		return err
	}
	return nil
}

// Check reports whether the email is whitelisted.
func (uc *implUseCase) Check(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	entry, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "beta.uc.Check GetOneEntry: %v", err)
		return false, err
	}
	return entry.ID != "", nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
