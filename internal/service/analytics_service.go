package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/export"
	"github.com/spec-kit/employee-dashboard/internal/repository"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// MaxTrendMonths bounds the bookmark trend window.
const MaxTrendMonths = 24

// AnalyticsService builds the dashboard rollups.
type AnalyticsService struct {
	store        *directory.Store
	events       repository.BookmarkEventRepository
	defaultTrend int
	now          func() time.Time
}

// NewAnalyticsService creates the service.
func NewAnalyticsService(store *directory.Store, events repository.BookmarkEventRepository, defaultTrend int) *AnalyticsService {
	if defaultTrend <= 0 {
		defaultTrend = 7
	}
	return &AnalyticsService{store: store, events: events, defaultTrend: defaultTrend, now: time.Now}
}

// Departments groups the roster by department. A nil registry counts no bookmarks.
func (s *AnalyticsService) Departments(registry *bookmark.Registry) []domain.DepartmentSummary {
	return analytics.ByDepartment(s.store.All(), isBookmarked(registry))
}

// BookmarkTrend returns months monthly counts of added bookmarks, oldest first.
// Zero selects the configured default.
func (s *AnalyticsService) BookmarkTrend(ctx context.Context, months int) ([]domain.TrendPoint, error) {
	if months == 0 {
		months = s.defaultTrend
	}
	if months < 0 || months > MaxTrendMonths {
		return nil, apperrors.NewValidationError("months out of range", map[string]any{"min": 1, "max": MaxTrendMonths})
	}

	now := s.now().UTC()
	counts, err := s.events.MonthlyAdds(ctx, analytics.TrendStart(now, months))
	if err != nil {
		return nil, fmt.Errorf("monthly bookmark adds: %w", err)
	}
	return analytics.Trend(counts, now, months), nil
}

// Export renders the roster and department rollup as an XLSX workbook.
func (s *AnalyticsService) Export(registry *bookmark.Registry) ([]byte, error) {
	marked := isBookmarked(registry)
	roster := s.store.All()
	data, err := export.Workbook(roster, analytics.ByDepartment(roster, marked), marked)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return data, nil
}

func isBookmarked(registry *bookmark.Registry) analytics.IsBookmarked {
	if registry == nil {
		return nil
	}
	return registry.IsBookmarked
}
