package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "relationship-os/internal/syncin/repository"
	"relationship-os/internal/syncin"
	"relationship-os/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for sync batches.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("syncin/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

const batchColumns = `id, user_id, source, sync_type, received, created, duplicates, errors, created_at`

// CreateBatch records a processed sync batch.
func (r *implRepository) CreateBatch(ctx context.Context, opt repo.CreateBatchOptions) (syncin.Batch, error) {
	query := fmt.Sprintf(`
		INSERT INTO sync_batches (id, user_id, source, sync_type, received, created, duplicates, errors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s`, batchColumns)

	var b syncin.Batch
	err := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Source, opt.SyncType,
		opt.Received, opt.Created, opt.Duplicates, opt.Errors,
	).Scan(
		&b.ID, &b.UserID, &b.Source, &b.SyncType,
		&b.Received, &b.Created, &b.Duplicates, &b.Errors, &b.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "syncin/repository/postgre.CreateBatch: %v", err)
		return syncin.Batch{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// ListBatches returns recent batches, newest first.
func (r *implRepository) ListBatches(ctx context.Context, opt repo.ListBatchesOptions) ([]syncin.Batch, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", idx))
		args = append(args, opt.Source)
		idx++
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	limit := opt.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(
		"SELECT %s FROM sync_batches WHERE %s ORDER BY created_at DESC LIMIT $%d",
		batchColumns, where, idx,
	)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "syncin/repository/postgre.ListBatches: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var batches []syncin.Batch
	for rows.Next() {
		var b syncin.Batch
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Source, &b.SyncType,
			&b.Received, &b.Created, &b.Duplicates, &b.Errors, &b.CreatedAt,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		batches = append(batches, b)
	}
	return batches, nil
}
