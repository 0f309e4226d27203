package dto

import (
	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// Employee maps a roster entry. A nil lookup omits the bookmarked flag.
func Employee(e domain.Employee, bookmarked analytics.IsBookmarked) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Age:        e.Age,
		Department: e.Department,
		Role:       e.Role,
		Rating:     e.Rating,
	}
	if bookmarked != nil {
		marked := bookmarked(e.ID)
		resp.Bookmarked = &marked
	}
	return resp
}

// Employees maps a roster slice.
func Employees(list []domain.Employee, bookmarked analytics.IsBookmarked) []EmployeeResponse {
	items := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, Employee(e, bookmarked))
	}
	return items
}

// EmployeeDetail maps the drill-down view.
func EmployeeDetail(d domain.EmployeeDetail, bookmarked analytics.IsBookmarked) EmployeeDetailResponse {
	history := make([]PerformanceResponse, 0, len(d.PerformanceHistory))
	for _, p := range d.PerformanceHistory {
		history = append(history, PerformanceResponse{Quarter: p.Quarter, Label: p.Label})
	}
	return EmployeeDetailResponse{
		EmployeeResponse:   Employee(d.Employee, bookmarked),
		Address:            d.Address,
		Bio:                d.Bio,
		PerformanceHistory: history,
		Projects:           d.Projects,
		Feedback:           d.Feedback,
	}
}

// Departments maps rollup rows, rounding averages for display.
func Departments(rows []domain.DepartmentSummary) []DepartmentSummaryResponse {
	items := make([]DepartmentSummaryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, DepartmentSummaryResponse{
			Department:    r.Department,
			Employees:     r.Employees,
			AverageRating: analytics.RoundTenth(r.AverageRating),
			Bookmarked:    r.Bookmarked,
			BookmarkRate:  r.BookmarkRate,
		})
	}
	return items
}

// Trend maps trend points.
func Trend(points []domain.TrendPoint) []TrendPointResponse {
	items := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		items = append(items, TrendPointResponse{Month: p.Month, Added: p.Added})
	}
	return items
}
