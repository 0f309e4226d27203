package dto

// ToggleBookmarkResponse reports membership after a toggle.
type ToggleBookmarkResponse struct {
	EmployeeID int  `json:"employee_id"`
	Bookmarked bool `json:"bookmarked"`
	Total      int  `json:"total"`
}

// BookmarkSummaryResponse reports a session's bookmark totals.
type BookmarkSummaryResponse struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
