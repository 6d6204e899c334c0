package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"relationship-os/internal/feedback"
	repo "relationship-os/internal/feedback/repository"
	"relationship-os/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the feedback domain.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("feedback/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

const feedbackColumns = `id, user_id, rating, category, message, page, created_at`

// CreateFeedback inserts a feedback record.
func (r *implRepository) CreateFeedback(ctx context.Context, opt repo.CreateFeedbackOptions) (feedback.Feedback, error) {
	query := fmt.Sprintf(`
		INSERT INTO feedback (id, user_id, rating, category, message, page, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s`, feedbackColumns)

	var f feedback.Feedback
	err := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Rating, opt.Category, opt.Message, opt.Page,
	).Scan(&f.ID, &f.UserID, &f.Rating, &f.Category, &f.Message, &f.Page, &f.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "feedback/repository/postgre.CreateFeedback: %v", err)
		return feedback.Feedback{}, repo.ErrFailedToInsertFeedback
	}
	return f, nil
}

// ListFeedback returns feedback newest first with a total count.
func (r *implRepository) ListFeedback(ctx context.Context, opt repo.ListFeedbackOptions) ([]feedback.Feedback, int, error) {
	conditions := []string{"1=1"}
	var args []any
	idx := 1

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM feedback WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "feedback/repository/postgre.ListFeedback count: %v", err)
		return nil, 0, repo.ErrFailedToListFeedback
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(
		"SELECT %s FROM feedback WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		feedbackColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "feedback/repository/postgre.ListFeedback: %v", err)
		return nil, 0, repo.ErrFailedToListFeedback
	}
	defer rows.Close()

	var items []feedback.Feedback
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.Category, &f.Message, &f.Page, &f.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToListFeedback
		}
		items = append(items, f)
	}
	return items, total, nil
}
