package dto

import "github.com/spec-kit/employee-dashboard/internal/domain"

// DepartmentSummaryResponse is one department rollup row.
type DepartmentSummaryResponse struct {
	Department    domain.Department `json:"department"`
	Employees     int               `json:"employees"`
	AverageRating float64           `json:"average_rating"`
	Bookmarked    int               `json:"bookmarked"`
	BookmarkRate  string            `json:"bookmark_rate"`
}

// TrendPointResponse counts bookmarks added in one month.
type TrendPointResponse struct {
	Month string `json:"month"`
	Added int    `json:"added"`
}
