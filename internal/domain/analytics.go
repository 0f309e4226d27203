package domain

import "time"

// DepartmentSummary is one row of the per-department rollup.
type DepartmentSummary struct {
	Department    Department
	Employees     int
	AverageRating float64
	Bookmarked    int
	BookmarkRate  string
}

// BookmarkSummary describes a session's bookmark list.
type BookmarkSummary struct {
	Count         int
	AverageRating float64
}

// BookmarkAction is the direction of a bookmark toggle.
type BookmarkAction string

const (
	BookmarkAdded   BookmarkAction = "added"
	BookmarkRemoved BookmarkAction = "removed"
)

// BookmarkEvent records a single toggle.
type BookmarkEvent struct {
	ID         string
	SessionID  string
	EmployeeID int
	Action     BookmarkAction
	CreatedAt  time.Time
}

// TrendPoint counts bookmarks added during one calendar month.
type TrendPoint struct {
	Month string
	Added int
}
