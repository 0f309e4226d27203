package dto

import (
	"time"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// EmployeeResponse is one roster row. Bookmarked is present only for session callers.
type EmployeeResponse struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Age        int               `json:"age"`
	Department domain.Department `json:"department"`
	Role       string            `json:"role"`
	Rating     float64           `json:"rating"`
	Bookmarked *bool             `json:"bookmarked,omitempty"`
}

// EmployeeDetailResponse is the drill-down view.
type EmployeeDetailResponse struct {
	EmployeeResponse
	Address            string                `json:"address"`
	Bio                string                `json:"bio"`
	PerformanceHistory []PerformanceResponse `json:"performance_history"`
	Projects           []string              `json:"projects"`
	Feedback           []string              `json:"feedback"`
}

// PerformanceResponse is one quarter's review.
type PerformanceResponse struct {
	Quarter string `json:"quarter"`
	Label   string `json:"label"`
}

// StatisticsResponse summarizes the roster.
type StatisticsResponse struct {
	TotalCount         int     `json:"total_count"`
	AverageRating      float64 `json:"average_rating"`
	HighPerformerCount int     `json:"high_performer_count"`
	BookmarkCount      *int    `json:"bookmark_count,omitempty"`
}

// RosterStatusResponse reports the roster load lifecycle.
type RosterStatusResponse struct {
	State    domain.LoadState `json:"state"`
	Count    int              `json:"count"`
	Error    string           `json:"error,omitempty"`
	LoadedAt *time.Time       `json:"loaded_at,omitempty"`
}
