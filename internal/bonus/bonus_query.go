package bonus

import (
	"strings"
	"time"
)

const historySelect = `
SELECT
	bonus_id,
	employee_id,
	employee_name,
	employee_email,
	bonus_type,
	amount,
	month_year,
	reason,
	created_at
FROM bonuses`

// HistoryFilter holds the optional history parameters. Nil or empty means
// the parameter was not supplied.
type HistoryFilter struct {
	EmployeeID string
	Month      *int
	Year       *int
	EndMonth   *int
	EndYear    *int
	Search     string
}

type predicate struct {
	clause string
	args   []any
}

// HistoryQuery is the history SELECT assembled from the active filters.
// Every user value travels as a bound parameter.
type HistoryQuery struct {
	predicates []predicate
}

func BuildHistoryQuery(f HistoryFilter) HistoryQuery {
	var q HistoryQuery

	if f.EmployeeID != "" {
		q.add("employee_id = ?", f.EmployeeID)
	}

	// Ranges compare whole calendar months, so "from March 2024" includes
	// January 2025.
	if f.Month != nil && f.Year != nil {
		q.add("month_year >= ?", FirstOfMonth(*f.Year, time.Month(*f.Month)))
	}

	switch {
	case f.EndMonth != nil && f.EndYear != nil:
		q.add("month_year <= ?", FirstOfMonth(*f.EndYear, time.Month(*f.EndMonth)))
	case f.Year != nil && f.Month == nil:
		q.add("EXTRACT(YEAR FROM month_year) = ?", *f.Year)
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q.add("(employee_id LIKE ? OR employee_name LIKE ?)", pattern, pattern)
	}

	return q
}

func (q *HistoryQuery) add(clause string, args ...any) {
	q.predicates = append(q.predicates, predicate{clause: clause, args: args})
}

// Where folds the active predicates with AND. It returns an empty clause
// when no filter is active.
func (q HistoryQuery) Where() (string, []any) {
	if len(q.predicates) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(q.predicates))
	var args []any
	for _, p := range q.predicates {
		clauses = append(clauses, p.clause)
		args = append(args, p.args...)
	}
	return strings.Join(clauses, " AND "), args
}

// SQL returns the full statement with '?' placeholders, ordered newest first.
func (q HistoryQuery) SQL() (string, []any) {
	where, args := q.Where()

	var b strings.Builder
	b.WriteString(historySelect)
	if where != "" {
		b.WriteString("\nWHERE ")
		b.WriteString(where)
	}
	b.WriteString("\nORDER BY created_at DESC")
	return b.String(), args
}
