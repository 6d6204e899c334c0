package postgre

import (
	"fmt"
	"strings"

	repo "relationship-os/internal/person/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOnePerson.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOnePersonOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Phone != "" {
		conditions = append(conditions, fmt.Sprintf("phone = $%d", idx))
		args = append(args, opt.Phone)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(email) = LOWER($%d)", idx))
		args = append(args, opt.Email)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(name) = LOWER($%d)", idx))
		args = append(args, opt.Name)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Persons (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListPersonsOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListPersons.
func (r *implRepository) buildListQuery(opt repo.ListPersonsOptions) (string, []any) {
	var parts []string
	conditions, args := r.listConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "name ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) listConditions(opt repo.ListPersonsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)", idx, idx, idx,
		))
		args = append(args, "%"+opt.Query+"%")
		idx++
	}

	return conditions, args
}
