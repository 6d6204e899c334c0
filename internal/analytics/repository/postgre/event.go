package postgre

import (
	"context"
	"database/sql"
	"encoding/json"

	"relationship-os/internal/analytics"
	repo "relationship-os/internal/analytics/repository"
	"relationship-os/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the analytics domain.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("analytics/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// CreateEvent inserts an analytics event. Properties are stored as JSONB.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (analytics.Event, error) {
	props, err := json.Marshal(opt.Properties)
	if err != nil {
		r.l.Errorf(ctx, "analytics/repository/postgre.CreateEvent marshal: %v", err)
		return analytics.Event{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO analytics_events (id, user_id, name, properties, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, name, properties, created_at`

	var e analytics.Event
	var rawProps []byte
	err = r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Name, props).Scan(
		&e.ID, &e.UserID, &e.Name, &rawProps, &e.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "analytics/repository/postgre.CreateEvent: %v", err)
		return analytics.Event{}, repo.ErrFailedToInsert
	}
	if len(rawProps) > 0 {
		if err := json.Unmarshal(rawProps, &e.Properties); err != nil {
			r.l.Warnf(ctx, "analytics/repository/postgre.CreateEvent unmarshal: %v", err)
		}
	}
	return e, nil
}

// SummarizeEvents aggregates event counts by name and day over the window.
func (r *implRepository) SummarizeEvents(ctx context.Context, opt repo.SummarizeEventsOptions) ([]analytics.SummaryRow, int, error) {
	const query = `
		SELECT name, DATE_TRUNC('day', created_at) AS day, COUNT(*)
		FROM analytics_events
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 day')
		GROUP BY name, day
		ORDER BY day DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.Days)
	if err != nil {
		r.l.Errorf(ctx, "analytics/repository/postgre.SummarizeEvents: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []analytics.SummaryRow
	total := 0
	for rows.Next() {
		var row analytics.SummaryRow
		if err := rows.Scan(&row.Name, &row.Day, &row.Count); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		total += row.Count
		out = append(out, row)
	}
	return out, total, nil
}
