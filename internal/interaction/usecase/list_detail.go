package usecase

import (
	"context"

	"relationship-os/internal/interaction"
	repo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
)

// List returns a paginated list of the scoped user's interactions.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input interaction.ListInteractionsInput) (interaction.ListInteractionsOutput, error) {
	interactions, total, err := uc.repo.ListInteractions(ctx, repo.ListInteractionsOptions{
		UserID:   sc.UserID,
		PersonID: input.PersonID,
		Type:     input.Type,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.List ListInteractions: %v", err)
		return interaction.ListInteractionsOutput{}, err
	}

	return interaction.ListInteractionsOutput{
		Interactions: interactions,
		Total:        total,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}, nil
}

// Detail retrieves a single Interaction by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (interaction.DetailInteractionOutput, error) {
	it, err := uc.repo.GetOneInteraction(ctx, repo.GetOneInteractionOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.Detail GetOneInteraction: %v", err)
		return interaction.DetailInteractionOutput{}, err
	}
	if it.ID == "" {
		return interaction.DetailInteractionOutput{}, interaction.ErrInteractionNotFound
	}
	return interaction.DetailInteractionOutput{Interaction: it}, nil
}

// UpdateFord modifies the FORD notes and summary of an interaction
// (partial update).
func (uc *implUseCase) UpdateFord(ctx context.Context, sc model.Scope, input interaction.UpdateFordInput) (interaction.UpdateFordOutput, error) {
	existing, err := uc.repo.GetOneInteraction(ctx, repo.GetOneInteractionOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.UpdateFord GetOneInteraction: %v", err)
		return interaction.UpdateFordOutput{}, err
	}
	if existing.ID == "" {
		return interaction.UpdateFordOutput{}, interaction.ErrInteractionNotFound
	}

	it, err := uc.repo.UpdateInteraction(ctx, repo.UpdateInteractionOptions{
		UserID:         sc.UserID,
		ID:             input.ID,
		Summary:        uc.coalesce(input.Summary, existing.Summary),
		FordFamily:     uc.coalesce(input.FordFamily, existing.FordFamily),
		FordOccupation: uc.coalesce(input.FordOccupation, existing.FordOccupation),
		FordRecreation: uc.coalesce(input.FordRecreation, existing.FordRecreation),
		FordDreams:     uc.coalesce(input.FordDreams, existing.FordDreams),
	})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.UpdateFord UpdateInteraction: %v", err)
		return interaction.UpdateFordOutput{}, err
	}
	return interaction.UpdateFordOutput{Interaction: it}, nil
}

// Delete removes an Interaction by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneInteraction(ctx, repo.GetOneInteractionOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.Delete GetOneInteraction: %v", err)
		return err
	}
	if existing.ID == "" {
		return interaction.ErrInteractionNotFound
	}
	if err := uc.repo.DeleteInteraction(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "interaction.uc.Delete DeleteInteraction: %v", err)
		return err
	}
	return nil
}
