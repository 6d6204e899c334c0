package repository

import (
	"context"

	"relationship-os/internal/syncin"
)

// Repository is the composed interface for the sync ingestion data store.
type Repository interface {
	BatchRepository
}

// BatchRepository records processed sync batches.
type BatchRepository interface {
	CreateBatch(ctx context.Context, opt CreateBatchOptions) (syncin.Batch, error)
	ListBatches(ctx context.Context, opt ListBatchesOptions) ([]syncin.Batch, error)
}
