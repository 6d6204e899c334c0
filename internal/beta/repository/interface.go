package repository

import (
	"context"

	"relationship-os/internal/beta"
)

// Repository is the composed interface for the beta domain data store.
type Repository interface {
	EntryRepository
}

// EntryRepository defines all data access methods for whitelist entries.
type EntryRepository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (beta.Entry, error)
	GetOneEntry(ctx context.Context, opt GetOneEntryOptions) (beta.Entry, error)
	ListEntries(ctx context.Context) ([]beta.Entry, int, error)
	DeleteEntry(ctx context.Context, email string) error
}
