package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseAttemptsSelect = `SELECT sku, COALESCE(item_id, ''), status, COALESCE(error_text, ''),
	title, price, currency, condition, COALESCE(aspects, '{}'),
	environment, listing_type, listing_duration,
	schedule_time, COALESCE(listing_url, ''), created_at
FROM listing_attempts`

const countAttemptsSelect = "SELECT COUNT(*) FROM listing_attempts"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an
// attempt history query. It returns two SQL strings (one for the data
// query, one for the count query) and the positional parameters.
func (q *AttemptQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, string(*q.Status))
		paramIdx++
	}

	if q.Environment != nil {
		conditions = append(conditions, fmt.Sprintf("environment = $%d", paramIdx))
		args = append(args, string(*q.Environment))
		paramIdx++
	}

	if q.ListingType != nil {
		conditions = append(conditions, fmt.Sprintf("listing_type = $%d", paramIdx))
		args = append(args, string(*q.ListingType))
		paramIdx++
	}

	if q.SKUPrefix != nil {
		conditions = append(conditions, fmt.Sprintf("sku LIKE $%d || '%%'", paramIdx))
		args = append(args, *q.SKUPrefix)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseAttemptsSelect, whereClause, limit, offset,
	)

	countSQL = countAttemptsSelect + whereClause

	return dataSQL, countSQL, args
}
