package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/events"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// DirectoryService coordinates roster loading and queries.
type DirectoryService struct {
	store      *directory.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDirectoryService creates the service.
func NewDirectoryService(store *directory.Store, dispatcher events.Dispatcher, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{store: store, dispatcher: dispatcher, logger: logger}
}

// Reload fetches the roster again. A failed reload leaves the roster empty.
func (s *DirectoryService) Reload(ctx context.Context, reason string) (directory.Status, error) {
	err := s.store.Load(ctx)
	status := s.store.Status()
	if err != nil {
		s.publish(ctx, events.EventRosterLoadFailed, events.RosterLoadFailedPayload{Error: err.Error(), Reason: reason})
		return status, apperrors.NewUnavailable("roster load failed", err)
	}
	s.publish(ctx, events.EventRosterLoaded, events.RosterLoadedPayload{Count: status.Count, Reason: reason})
	return status, nil
}

// List returns employees matching criteria.
func (s *DirectoryService) List(criteria domain.Criteria) []domain.Employee {
	return s.store.List(criteria)
}

// All returns the full roster.
func (s *DirectoryService) All() []domain.Employee {
	return s.store.All()
}

// Statistics summarizes the roster.
func (s *DirectoryService) Statistics() domain.Statistics {
	return s.store.Statistics()
}

// Status reports the roster load state.
func (s *DirectoryService) Status() directory.Status {
	return s.store.Status()
}

// Detail returns the drill-down view for id.
func (s *DirectoryService) Detail(ctx context.Context, id int) (domain.EmployeeDetail, error) {
	if id <= 0 {
		return domain.EmployeeDetail{}, apperrors.NewValidationError("employee id must be positive", map[string]any{"id": id})
	}
	detail, err := s.store.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.EmployeeDetail{}, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return domain.EmployeeDetail{}, apperrors.NewUnavailable("fetch employee", err)
	}
	return detail, nil
}

func (s *DirectoryService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{ID: uuid.NewString(), Type: eventType, Timestamp: time.Now().UTC(), Payload: payload}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
