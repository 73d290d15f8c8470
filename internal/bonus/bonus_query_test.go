package bonus_test

import (
	"strings"
	"testing"
	"time"

	"go-bonus/internal/bonus"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func firstOf(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuildHistoryQuery_NoFilters(t *testing.T) {
	q := bonus.BuildHistoryQuery(bonus.HistoryFilter{})

	where, args := q.Where()
	assert.Empty(t, where)
	assert.Empty(t, args)

	stmt, _ := q.SQL()
	assert.NotContains(t, stmt, "WHERE")
	assert.True(t, strings.HasSuffix(stmt, "ORDER BY created_at DESC"))
}

func TestBuildHistoryQuery_Filters(t *testing.T) {
	tests := []struct {
		name      string
		filter    bonus.HistoryFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "employee id",
			filter:    bonus.HistoryFilter{EmployeeID: "ATS0001"},
			wantWhere: "employee_id = ?",
			wantArgs:  []any{"ATS0001"},
		},
		{
			name:      "range start",
			filter:    bonus.HistoryFilter{Month: intPtr(3), Year: intPtr(2024)},
			wantWhere: "month_year >= ?",
			wantArgs:  []any{firstOf(2024, time.March)},
		},
		{
			name:      "range end",
			filter:    bonus.HistoryFilter{EndMonth: intPtr(6), EndYear: intPtr(2024)},
			wantWhere: "month_year <= ?",
			wantArgs:  []any{firstOf(2024, time.June)},
		},
		{
			name:      "year only",
			filter:    bonus.HistoryFilter{Year: intPtr(2023)},
			wantWhere: "EXTRACT(YEAR FROM month_year) = ?",
			wantArgs:  []any{2023},
		},
		{
			name:      "month without year is ignored",
			filter:    bonus.HistoryFilter{Month: intPtr(3)},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "end month without end year is ignored",
			filter:    bonus.HistoryFilter{EndMonth: intPtr(3)},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "year with end range uses the range only",
			filter:    bonus.HistoryFilter{Year: intPtr(2023), EndMonth: intPtr(12), EndYear: intPtr(2024)},
			wantWhere: "month_year <= ?",
			wantArgs:  []any{firstOf(2024, time.December)},
		},
		{
			name:      "search",
			filter:    bonus.HistoryFilter{Search: "ATS0"},
			wantWhere: "(employee_id LIKE ? OR employee_name LIKE ?)",
			wantArgs:  []any{"%ATS0%", "%ATS0%"},
		},
		{
			name: "everything combined with AND",
			filter: bonus.HistoryFilter{
				EmployeeID: "ATS0007",
				Month:      intPtr(1),
				Year:       intPtr(2024),
				EndMonth:   intPtr(12),
				EndYear:    intPtr(2024),
				Search:     "Ravi",
			},
			wantWhere: "employee_id = ? AND month_year >= ? AND month_year <= ? AND (employee_id LIKE ? OR employee_name LIKE ?)",
			wantArgs:  []any{"ATS0007", firstOf(2024, time.January), firstOf(2024, time.December), "%Ravi%", "%Ravi%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := bonus.BuildHistoryQuery(tt.filter).Where()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildHistoryQuery_UserInputIsNeverInlined(t *testing.T) {
	hostile := "x'; DROP TABLE bonuses; --"

	stmt, args := bonus.BuildHistoryQuery(bonus.HistoryFilter{
		EmployeeID: hostile,
		Search:     hostile,
	}).SQL()

	assert.NotContains(t, stmt, "DROP TABLE")
	assert.Contains(t, args, hostile)
	assert.Equal(t, strings.Count(stmt, "?"), len(args))
}

// The range-start bound selects Mar and Apr 2024 out of a fixture holding
// Feb, Mar, Apr 2024 and Mar 2023.
func TestBuildHistoryQuery_RangeStartAgainstFixture(t *testing.T) {
	fixture := []time.Time{
		firstOf(2024, time.February),
		firstOf(2024, time.March),
		firstOf(2024, time.April),
		firstOf(2023, time.March),
	}

	where, args := bonus.BuildHistoryQuery(bonus.HistoryFilter{Month: intPtr(3), Year: intPtr(2024)}).Where()
	assert.Equal(t, "month_year >= ?", where)
	bound := args[0].(time.Time)

	var selected []time.Time
	for _, m := range fixture {
		if !m.Before(bound) {
			selected = append(selected, m)
		}
	}

	assert.Equal(t, []time.Time{firstOf(2024, time.March), firstOf(2024, time.April)}, selected)
}
