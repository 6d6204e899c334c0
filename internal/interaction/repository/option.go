package repository

import (
	"time"

	"relationship-os/internal/interaction"
)

// CreateInteractionOptions holds parameters for inserting a new Interaction.
type CreateInteractionOptions struct {
	UserID          string
	PersonID        string
	Type            interaction.Type
	Source          string
	ExternalID      string
	Title           string
	Content         string
	Summary         string
	Transcript      string
	OccurredAt      *time.Time
	DateConfidence  string
	DateReasoning   string
	DurationMinutes int
	FordFamily      string
	FordOccupation  string
	FordRecreation  string
	FordDreams      string
}

// GetOneInteractionOptions holds filter parameters for fetching a single
// Interaction. All non-empty fields are applied as AND conditions.
type GetOneInteractionOptions struct {
	UserID     string
	ID         string
	Source     string
	ExternalID string
}

// ListInteractionsOptions holds filter and pagination parameters.
type ListInteractionsOptions struct {
	UserID   string
	PersonID string
	Type     interaction.Type
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateInteractionOptions holds parameters for updating FORD notes/summary.
type UpdateInteractionOptions struct {
	UserID         string
	ID             string
	Summary        string
	FordFamily     string
	FordOccupation string
	FordRecreation string
	FordDreams     string
}
