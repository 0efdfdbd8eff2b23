package store

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 200
)

const baseOffersSelect = `SELECT o.id, o.property_id, o.buyer_id, o.offered_price, o.status,
	o.counter_price, COALESCE(o.modification_history, '[]'), o.offer_timestamp, o.created_at,
	b.first_name, b.last_name, b.email, b.phone
FROM offers o
JOIN buyers b ON b.id = o.buyer_id`

const countOffersSelect = `SELECT COUNT(*)
FROM offers o
JOIN buyers b ON b.id = o.buyer_id`

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an offer
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *OfferQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", paramIdx))
		args = append(args, string(*q.Status))
		paramIdx++
	}

	if q.PropertyID != nil {
		conditions = append(conditions, fmt.Sprintf("o.property_id = $%d", paramIdx))
		args = append(args, *q.PropertyID)
		paramIdx++
	}

	if q.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.offer_timestamp >= $%d", paramIdx))
		args = append(args, *q.StartDate)
		paramIdx++
	}

	if q.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.offer_timestamp <= $%d", paramIdx))
		args = append(args, endOfDay(*q.EndDate))
		paramIdx++
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(b.first_name ILIKE $%d OR b.last_name ILIKE $%d OR b.email ILIKE $%d OR b.phone ILIKE $%d)",
			paramIdx, paramIdx+1, paramIdx+2, paramIdx+3,
		))
		args = append(args, pattern, pattern, pattern, pattern)
		paramIdx += 4
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = "\nWHERE " + strings.Join(conditions, " AND ")
	}

	page := q.Page
	if page < 1 {
		page = defaultPage
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := (page - 1) * limit

	dataSQL = fmt.Sprintf(
		"%s%s\nORDER BY o.offer_timestamp DESC LIMIT %d OFFSET %d",
		baseOffersSelect, whereClause, limit, offset,
	)

	countSQL = countOffersSelect + whereClause

	return dataSQL, countSQL, args
}

// endOfDay pushes t to the last instant of its calendar day so a range whose
// start and end fall on the same date still matches that day's offers.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
