package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"relationship-os/internal/beta"
	repo "relationship-os/internal/beta/repository"
	"relationship-os/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the beta domain.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("beta/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

const entryColumns = `id, email, note, added_by, created_at`

// CreateEntry inserts a whitelist entry. Emails are stored lowercased.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (beta.Entry, error) {
	query := fmt.Sprintf(`
		INSERT INTO beta_whitelist (email, note, added_by, created_at)
		VALUES (LOWER($1), $2, $3, NOW())
		RETURNING %s`, entryColumns)

	var e beta.Entry
	err := r.db.QueryRowContext(ctx, query, opt.Email, opt.Note, opt.AddedBy).Scan(
		&e.ID, &e.Email, &e.Note, &e.AddedBy, &e.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "beta/repository/postgre.CreateEntry: %v", err)
		return beta.Entry{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEntry fetches an entry by ID or email. Zero value when not found.
func (r *implRepository) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (beta.Entry, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = LOWER($%d)", idx))
		args = append(args, opt.Email)
		idx++
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf("SELECT %s FROM beta_whitelist WHERE %s LIMIT 1",
		entryColumns, strings.Join(conditions, " AND "))

	var e beta.Entry
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&e.ID, &e.Email, &e.Note, &e.AddedBy, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return beta.Entry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "beta/repository/postgre.GetOneEntry: %v", err)
		return beta.Entry{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEntries returns every whitelist entry, newest first.
func (r *implRepository) ListEntries(ctx context.Context) ([]beta.Entry, int, error) {
	query := fmt.Sprintf("SELECT %s FROM beta_whitelist ORDER BY created_at DESC", entryColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "beta/repository/postgre.ListEntries: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []beta.Entry
	for rows.Next() {
		var e beta.Entry
		if err := rows.Scan(&e.ID, &e.Email, &e.Note, &e.AddedBy, &e.CreatedAt); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		entries = append(entries, e)
	}
	return entries, len(entries), nil
}

// DeleteEntry removes an entry by email.
func (r *implRepository) DeleteEntry(ctx context.Context, email string) error {
	const query = `DELETE FROM beta_whitelist WHERE email = LOWER($1)`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		r.l.Errorf(ctx, "beta/repository/postgre.DeleteEntry: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
