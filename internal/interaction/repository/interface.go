package repository

import (
	"context"

	"relationship-os/internal/interaction"
)

// Repository is the composed interface for the interaction domain data store.
type Repository interface {
	InteractionRepository
}

// InteractionRepository defines all data access methods for the Interaction entity.
type InteractionRepository interface {
	CreateInteraction(ctx context.Context, opt CreateInteractionOptions) (interaction.Interaction, error)
	GetOneInteraction(ctx context.Context, opt GetOneInteractionOptions) (interaction.Interaction, error)
	ListInteractions(ctx context.Context, opt ListInteractionsOptions) ([]interaction.Interaction, int, error)
	UpdateInteraction(ctx context.Context, opt UpdateInteractionOptions) (interaction.Interaction, error)
	DeleteInteraction(ctx context.Context, userID, id string) error
}
