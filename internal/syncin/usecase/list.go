package usecase

import (
	"context"

	"relationship-os/internal/model"
	"relationship-os/internal/syncin"
	batchRepo "relationship-os/internal/syncin/repository"
)

// ListBatches returns recent batch records for auditing agent activity.
func (uc *implUseCase) ListBatches(ctx context.Context, sc model.Scope, input syncin.ListBatchesInput) ([]syncin.Batch, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	batches, err := uc.batchRepo.ListBatches(ctx, batchRepo.ListBatchesOptions{
		UserID: input.UserID,
		Source: input.Source,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.ListBatches: %v", err)
		return nil, err
	}
	return batches, nil
}
