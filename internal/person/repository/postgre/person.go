package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"relationship-os/internal/person"
	repo "relationship-os/internal/person/repository"
)

const personColumns = `id, user_id, name, phone, email, company, notes, created_at, updated_at`

func scanPerson(row interface{ Scan(dest ...any) error }) (person.Person, error) {
	var p person.Person
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Email, &p.Company, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreatePerson inserts a new Person row and returns the created entity.
func (r *implRepository) CreatePerson(ctx context.Context, opt repo.CreatePersonOptions) (person.Person, error) {
	query := fmt.Sprintf(`
		INSERT INTO persons (user_id, name, phone, email, company, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, personColumns)

	p, err := scanPerson(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Name, opt.Phone, opt.Email, opt.Company, opt.Notes,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePerson"), err)
		return person.Person{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOnePerson retrieves a single Person by the provided filters (AND condition).
// Returns zero-value Person (ID == "") when not found, without error.
func (r *implRepository) GetOnePerson(ctx context.Context, opt repo.GetOnePersonOptions) (person.Person, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM persons WHERE %s LIMIT 1", personColumns, mods)

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return person.Person{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePerson"), err)
		return person.Person{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPersons returns a paginated list of Persons and the total count.
func (r *implRepository) ListPersons(ctx context.Context, opt repo.ListPersonsOptions) ([]person.Person, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM persons WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPersons"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM persons %s", personColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPersons"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		persons = append(persons, p)
	}
	return persons, total, nil
}

// UpdatePerson updates a Person by ID within the user's scope and returns the
// updated entity.
func (r *implRepository) UpdatePerson(ctx context.Context, opt repo.UpdatePersonOptions) (person.Person, error) {
	query := fmt.Sprintf(`
		UPDATE persons
		SET name = $1, phone = $2, email = $3, company = $4, notes = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING %s`, personColumns)

	p, err := scanPerson(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Phone, opt.Email, opt.Company, opt.Notes, time.Now(), opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return person.Person{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePerson"), err)
		return person.Person{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeletePerson removes a Person by ID within the user's scope.
func (r *implRepository) DeletePerson(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM persons WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePerson"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
