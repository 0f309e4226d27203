package events

import (
	"time"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// EventType names a dashboard event. Bookmark events carry a
// BookmarkToggledPayload; roster events carry RosterLoadedPayload or
// RosterLoadFailedPayload.
type EventType string

const (
	EventEmployeeBookmarked   EventType = "employee_bookmarked"
	EventEmployeeUnbookmarked EventType = "employee_unbookmarked"
	EventRosterLoaded         EventType = "roster_loaded"
	EventRosterLoadFailed     EventType = "roster_load_failed"
)

// Event is published by the directory and bookmark services. SessionID is set
// only for bookmark events; ID doubles as the activity log row id.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookmarkToggledPayload describes one toggle. Total is the session's bookmark
// count after the toggle.
type BookmarkToggledPayload struct {
	EmployeeID int               `json:"employee_id"`
	Department domain.Department `json:"department"`
	Total      int               `json:"total"`
}

// RosterLoadedPayload reports a successful load; Reason is "startup" or "admin".
type RosterLoadedPayload struct {
	Count  int    `json:"count"`
	Reason string `json:"reason"`
}

// RosterLoadFailedPayload reports a failed load that left the roster empty.
type RosterLoadFailedPayload struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
