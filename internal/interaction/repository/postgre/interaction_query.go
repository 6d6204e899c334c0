package postgre

import (
	"fmt"
	"strings"

	repo "relationship-os/internal/interaction/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneInteraction.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneInteractionOptions) (string, []any) {
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
	if opt.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", idx))
		args = append(args, opt.Source)
		idx++
	}
	if opt.ExternalID != "" {
		conditions = append(conditions, fmt.Sprintf("external_id = $%d", idx))
		args = append(args, opt.ExternalID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListInteractionsOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildListQuery(opt repo.ListInteractionsOptions) (string, []any) {
	var parts []string
	conditions, args := r.listConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		// Most recent first; rows without a resolved date sort by creation time.
		orderBy = "COALESCE(occurred_at, created_at) DESC"
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

func (r *implRepository) listConditions(opt repo.ListInteractionsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.PersonID != "" {
		conditions = append(conditions, fmt.Sprintf("person_id = $%d", idx))
		args = append(args, opt.PersonID)
		idx++
	}
	if opt.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", idx))
		args = append(args, opt.Type)
		idx++
	}

	return conditions, args
}
