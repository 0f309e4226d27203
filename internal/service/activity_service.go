package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/events"
	"github.com/spec-kit/employee-dashboard/internal/repository"
)

// ActivityService records dashboard events into the activity log.
type ActivityService struct {
	dispatcher events.Dispatcher
	repo       repository.BookmarkEventRepository
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, repo repository.BookmarkEventRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{dispatcher: dispatcher, repo: repo, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeBookmarked, a.handleBookmarkToggled)
	a.dispatcher.Subscribe(events.EventEmployeeUnbookmarked, a.handleBookmarkToggled)
	a.dispatcher.Subscribe(events.EventRosterLoaded, a.handleRosterLoaded)
	a.dispatcher.Subscribe(events.EventRosterLoadFailed, a.handleRosterLoadFailed)
}

func (a *ActivityService) handleBookmarkToggled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BookmarkToggledPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	a.logger.Info(string(event.Type),
		zap.String("session_id", event.SessionID),
		zap.Int("employee_id", payload.EmployeeID),
		zap.Int("total", payload.Total))

	action := domain.BookmarkRemoved
	if event.Type == events.EventEmployeeBookmarked {
		action = domain.BookmarkAdded
	}
	record := &domain.BookmarkEvent{
		ID:         event.ID,
		SessionID:  event.SessionID,
		EmployeeID: payload.EmployeeID,
		Action:     action,
		CreatedAt:  event.Timestamp,
	}
	if err := a.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("record bookmark event: %w", err)
	}
	return nil
}

func (a *ActivityService) handleRosterLoaded(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type), zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (a *ActivityService) handleRosterLoadFailed(_ context.Context, event events.Event) error {
	a.logger.Warn(string(event.Type), zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
