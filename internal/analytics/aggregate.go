// Package analytics computes the dashboard rollups. Every function is pure and
// total: empty inputs produce zero values rather than dividing by zero.
package analytics

import (
	"math"
	"strconv"
	"time"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// IsBookmarked reports bookmark membership by employee id.
type IsBookmarked func(id int) bool

// AverageRating returns the arithmetic mean rating, or 0 for no employees.
func AverageRating(employees []domain.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	var sum float64
	for _, e := range employees {
		sum += e.Rating
	}
	return sum / float64(len(employees))
}

// RoundTenth rounds to one decimal place for display.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Statistics summarizes the full, unfiltered roster.
func Statistics(roster []domain.Employee) domain.Statistics {
	stats := domain.Statistics{
		TotalCount:    len(roster),
		AverageRating: RoundTenth(AverageRating(roster)),
	}
	for _, e := range roster {
		if e.Rating == domain.MaxRating {
			stats.HighPerformerCount++
		}
	}
	return stats
}

// ByDepartment groups the roster by the fixed department list. The result always
// has one row per department, in department order.
func ByDepartment(roster []domain.Employee, bookmarked IsBookmarked) []domain.DepartmentSummary {
	groups := make(map[domain.Department][]domain.Employee, len(domain.Departments))
	for _, e := range roster {
		groups[e.Department] = append(groups[e.Department], e)
	}

	rows := make([]domain.DepartmentSummary, 0, len(domain.Departments))
	for _, dept := range domain.Departments {
		members := groups[dept]
		row := domain.DepartmentSummary{
			Department:    dept,
			Employees:     len(members),
			AverageRating: AverageRating(members),
		}
		if bookmarked != nil {
			for _, e := range members {
				if bookmarked(e.ID) {
					row.Bookmarked++
				}
			}
		}
		row.BookmarkRate = Percent(row.Bookmarked, row.Employees)
		rows = append(rows, row)
	}
	return rows
}

// Percent formats part/whole*100 with one decimal, "0.0" when whole is zero.
func Percent(part, whole int) string {
	if whole == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)/float64(whole)*100, 'f', 1, 64)
}

// Bookmarks summarizes a bookmark list.
func Bookmarks(bookmarks []domain.Employee) domain.BookmarkSummary {
	return domain.BookmarkSummary{
		Count:         len(bookmarks),
		AverageRating: RoundTenth(AverageRating(bookmarks)),
	}
}

// Trend expands monthly counts into exactly months points ending at now's month,
// oldest first. Months without events are zero.
func Trend(counts map[string]int, now time.Time, months int) []domain.TrendPoint {
	if months <= 0 {
		return []domain.TrendPoint{}
	}
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := current.AddDate(0, -i, 0).Format("2006-01")
		points = append(points, domain.TrendPoint{Month: month, Added: counts[month]})
	}
	return points
}

// TrendStart is the first instant covered by a trend of months ending at now.
func TrendStart(now time.Time, months int) time.Time {
	if months <= 0 {
		months = 1
	}
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return current.AddDate(0, -(months - 1), 0)
}
