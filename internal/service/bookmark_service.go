package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/events"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// BookmarkService toggles and reports a session's bookmarks.
type BookmarkService struct {
	store      *directory.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewBookmarkService creates the service.
func NewBookmarkService(store *directory.Store, dispatcher events.Dispatcher, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{store: store, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// Toggle flips membership of employee id in the session registry and reports
// whether the employee is bookmarked afterwards.
func (s *BookmarkService) Toggle(ctx context.Context, sessionID string, registry *bookmark.Registry, id int) (bool, error) {
	employee, ok := s.store.Get(id)
	if !ok {
		// a bookmarked id that dropped out of the roster can still be removed
		for _, e := range registry.All() {
			if e.ID == id {
				employee, ok = e, true
				break
			}
		}
	}
	if !ok {
		return false, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	added := registry.Toggle(employee)
	eventType := events.EventEmployeeUnbookmarked
	if added {
		eventType = events.EventEmployeeBookmarked
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      eventType,
			SessionID: sessionID,
			Timestamp: s.now().UTC(),
			Payload: events.BookmarkToggledPayload{
				EmployeeID: employee.ID,
				Department: employee.Department,
				Total:      registry.Len(),
			},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("bookmark event handler failed", zap.Int("employee_id", id), zap.Error(err))
		}
	}
	return added, nil
}

// List returns the session's bookmarks in insertion order.
func (s *BookmarkService) List(registry *bookmark.Registry) []domain.Employee {
	return registry.All()
}

// Summary reports count and average rating of the session's bookmarks.
func (s *BookmarkService) Summary(registry *bookmark.Registry) domain.BookmarkSummary {
	return analytics.Bookmarks(registry.All())
}
