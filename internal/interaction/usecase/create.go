package usecase

import (
	"context"
	"errors"

	"relationship-os/internal/interaction"
	repo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
	"relationship-os/internal/person"
)

// Create logs a new interaction. When the caller did not say when it
// happened but a transcript is present, the occurrence date is inferred from
// the transcript. Inference is best effort: a failed inference still stores
// the interaction, with the failure recorded in the date audit fields.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input interaction.CreateInteractionInput) (interaction.CreateInteractionOutput, error) {
	if !interaction.ValidType(input.Type) {
		return interaction.CreateInteractionOutput{}, interaction.ErrInvalidType
	}

	if _, err := uc.personUC.Detail(ctx, sc, input.PersonID); err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return interaction.CreateInteractionOutput{}, interaction.ErrPersonNotFound
		}
		uc.l.Errorf(ctx, "interaction.uc.Create person lookup: %v", err)
		return interaction.CreateInteractionOutput{}, err
	}

	opt := repo.CreateInteractionOptions{
		UserID:          sc.UserID,
		PersonID:        input.PersonID,
		Type:            input.Type,
		Source:          input.Source,
		ExternalID:      input.ExternalID,
		Title:           input.Title,
		Content:         input.Content,
		Summary:         input.Summary,
		Transcript:      input.Transcript,
		OccurredAt:      input.OccurredAt,
		DurationMinutes: input.DurationMinutes,
		FordFamily:      input.FordFamily,
		FordOccupation:  input.FordOccupation,
		FordRecreation:  input.FordRecreation,
		FordDreams:      input.FordDreams,
	}
	if opt.Source == "" {
		opt.Source = "manual"
	}

	if opt.OccurredAt == nil && input.Transcript != "" && uc.inferrer != nil {
		result := uc.inferrer.InferAt(ctx, input.Transcript, uc.now())
		opt.OccurredAt = result.InferredDate
		opt.DateConfidence = string(result.Confidence)
		opt.DateReasoning = result.Reasoning
	}

	it, err := uc.repo.CreateInteraction(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.Create CreateInteraction: %v", err)
		return interaction.CreateInteractionOutput{}, err
	}

	uc.track(ctx, sc, "interaction_created", map[string]any{
		"type":   string(it.Type),
		"source": it.Source,
	})

	return interaction.CreateInteractionOutput{Interaction: it}, nil
}
