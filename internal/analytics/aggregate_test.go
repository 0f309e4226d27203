package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

func emp(id int, dept domain.Department, rating float64) domain.Employee {
	return domain.Employee{ID: id, Department: dept, Rating: rating}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 5.0, AverageRating([]domain.Employee{{Rating: 5}}))
	assert.InDelta(t, 4.0, AverageRating([]domain.Employee{{Rating: 4}, {Rating: 5}, {Rating: 3}}), 1e-9)
}

func TestStatistics(t *testing.T) {
	roster := []domain.Employee{
		emp(1, domain.DepartmentHR, 5),
		emp(2, domain.DepartmentHR, 4),
		emp(3, domain.DepartmentSales, 5),
	}
	stats := Statistics(roster)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 4.7, stats.AverageRating)
	assert.Equal(t, 2, stats.HighPerformerCount)

	empty := Statistics(nil)
	assert.Equal(t, domain.Statistics{}, empty)
}

func TestByDepartmentAlwaysFiveRows(t *testing.T) {
	tests := []struct {
		name   string
		roster []domain.Employee
	}{
		{"empty roster", nil},
		{"one department", []domain.Employee{emp(1, domain.DepartmentSales, 3)}},
		{"all departments", []domain.Employee{
			emp(1, domain.DepartmentHR, 1), emp(2, domain.DepartmentEngineering, 2),
			emp(3, domain.DepartmentSales, 3), emp(4, domain.DepartmentMarketing, 4),
			emp(5, domain.DepartmentSupport, 5),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ByDepartment(tt.roster, nil)
			require.Len(t, rows, len(domain.Departments))
			for i, row := range rows {
				assert.Equal(t, domain.Departments[i], row.Department)
			}
		})
	}
}

func TestByDepartmentRollup(t *testing.T) {
	roster := []domain.Employee{
		emp(1, domain.DepartmentEngineering, 4),
		emp(2, domain.DepartmentEngineering, 5),
		emp(3, domain.DepartmentEngineering, 3),
		emp(4, domain.DepartmentSupport, 2),
	}
	marked := map[int]bool{1: true, 4: true}
	rows := ByDepartment(roster, func(id int) bool { return marked[id] })

	eng := rows[1]
	assert.Equal(t, 3, eng.Employees)
	assert.InDelta(t, 4.0, eng.AverageRating, 1e-9)
	assert.Equal(t, 1, eng.Bookmarked)
	assert.Equal(t, "33.3", eng.BookmarkRate)

	support := rows[4]
	assert.Equal(t, "100.0", support.BookmarkRate)

	hr := rows[0]
	assert.Equal(t, 0, hr.Employees)
	assert.Equal(t, 0.0, hr.AverageRating)
	assert.Equal(t, "0.0", hr.BookmarkRate)
}

func TestBookmarksSummary(t *testing.T) {
	summary := Bookmarks([]domain.Employee{{ID: 1, Rating: 4}, {ID: 2, Rating: 5}, {ID: 3, Rating: 3}})
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 4.0, summary.AverageRating)

	assert.Equal(t, domain.BookmarkSummary{}, Bookmarks(nil))
}

func TestTrend(t *testing.T) {
	now := time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
	points := Trend(map[string]int{"2026-02": 3, "2025-11": 1, "2024-01": 9}, now, 4)

	assert.Equal(t, []domain.TrendPoint{
		{Month: "2025-11", Added: 1},
		{Month: "2025-12", Added: 0},
		{Month: "2026-01", Added: 0},
		{Month: "2026-02", Added: 3},
	}, points)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), TrendStart(now, 4))
	assert.Empty(t, Trend(nil, now, 0))
}
