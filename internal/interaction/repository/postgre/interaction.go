package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"relationship-os/internal/interaction"
	repo "relationship-os/internal/interaction/repository"
)

const interactionColumns = `id, user_id, person_id, type, source, external_id,
	title, content, summary, transcript,
	occurred_at, date_confidence, date_reasoning, duration_minutes,
	ford_family, ford_occupation, ford_recreation, ford_dreams,
	created_at, updated_at`

func scanInteraction(row interface{ Scan(dest ...any) error }) (interaction.Interaction, error) {
	var it interaction.Interaction
	var occurredAt sql.NullTime
	err := row.Scan(
		&it.ID, &it.UserID, &it.PersonID, &it.Type, &it.Source, &it.ExternalID,
		&it.Title, &it.Content, &it.Summary, &it.Transcript,
		&occurredAt, &it.DateConfidence, &it.DateReasoning, &it.DurationMinutes,
		&it.FordFamily, &it.FordOccupation, &it.FordRecreation, &it.FordDreams,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if occurredAt.Valid {
		t := occurredAt.Time
		it.OccurredAt = &t
	}
	return it, err
}

// CreateInteraction inserts a new Interaction row and returns the created entity.
func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (interaction.Interaction, error) {
	query := fmt.Sprintf(`
		INSERT INTO interactions (
			user_id, person_id, type, source, external_id,
			title, content, summary, transcript,
			occurred_at, date_confidence, date_reasoning, duration_minutes,
			ford_family, ford_occupation, ford_recreation, ford_dreams,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING %s`, interactionColumns)

	var occurredAt any
	if opt.OccurredAt != nil {
		occurredAt = *opt.OccurredAt
	}

	it, err := scanInteraction(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.PersonID, opt.Type, opt.Source, opt.ExternalID,
		opt.Title, opt.Content, opt.Summary, opt.Transcript,
		occurredAt, opt.DateConfidence, opt.DateReasoning, opt.DurationMinutes,
		opt.FordFamily, opt.FordOccupation, opt.FordRecreation, opt.FordDreams,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneInteraction retrieves a single Interaction by the provided filters.
// Returns zero-value Interaction (ID == "") when not found, without error.
func (r *implRepository) GetOneInteraction(ctx context.Context, opt repo.GetOneInteractionOptions) (interaction.Interaction, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM interactions WHERE %s LIMIT 1", interactionColumns, mods)

	it, err := scanInteraction(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return interaction.Interaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListInteractions returns a paginated list and the total count.
func (r *implRepository) ListInteractions(ctx context.Context, opt repo.ListInteractionsOptions) ([]interaction.Interaction, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM interactions WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM interactions %s", interactionColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var interactions []interaction.Interaction
	for rows.Next() {
		it, err := scanInteraction(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		interactions = append(interactions, it)
	}
	return interactions, total, nil
}

// UpdateInteraction updates FORD notes and summary of an Interaction.
func (r *implRepository) UpdateInteraction(ctx context.Context, opt repo.UpdateInteractionOptions) (interaction.Interaction, error) {
	query := fmt.Sprintf(`
		UPDATE interactions
		SET summary = $1, ford_family = $2, ford_occupation = $3,
			ford_recreation = $4, ford_dreams = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING %s`, interactionColumns)

	it, err := scanInteraction(r.db.QueryRowContext(ctx, query,
		opt.Summary, opt.FordFamily, opt.FordOccupation,
		opt.FordRecreation, opt.FordDreams, time.Now(), opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return interaction.Interaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteInteraction removes an Interaction by ID within the user's scope.
func (r *implRepository) DeleteInteraction(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM interactions WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteInteraction"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
