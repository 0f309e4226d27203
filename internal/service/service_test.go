package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	"github.com/spec-kit/employee-dashboard/internal/config"
	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/events"
	"github.com/spec-kit/employee-dashboard/internal/repository"
	"github.com/spec-kit/employee-dashboard/internal/testutil"
	"github.com/spec-kit/employee-dashboard/internal/upstream"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

type fixture struct {
	upstream   *testutil.FakeUpstream
	store      *directory.Store
	dispatcher events.Dispatcher
	repo       *repository.MemoryBookmarkEventRepository
	directory  *DirectoryService
	bookmarks  *BookmarkService
	analytics  *AnalyticsService
}

func newFixture(t *testing.T, users int) *fixture {
	t.Helper()
	fake := testutil.NewFakeUpstream(t, testutil.FakeUsers(users))
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: fake.URL(), PageLimit: 20, TimeoutSeconds: 5})
	store := directory.NewStore(client, 20, zap.NewNop())
	dispatcher := events.NewInMemoryDispatcher()
	repo := repository.NewMemoryBookmarkEventRepository()
	NewActivityService(dispatcher, repo, zap.NewNop()).RegisterHandlers()

	return &fixture{
		upstream:   fake,
		store:      store,
		dispatcher: dispatcher,
		repo:       repo,
		directory:  NewDirectoryService(store, dispatcher, zap.NewNop()),
		bookmarks:  NewBookmarkService(store, dispatcher, zap.NewNop()),
		analytics:  NewAnalyticsService(store, repo, 7),
	}
}

func (f *fixture) reload(t *testing.T) {
	t.Helper()
	_, err := f.directory.Reload(context.Background(), "test")
	require.NoError(t, err)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperrors.ToDomainError(err).Code)
}

func TestReloadPublishesEvents(t *testing.T) {
	f := newFixture(t, 25)
	var published []events.EventType
	for _, et := range []events.EventType{events.EventRosterLoaded, events.EventRosterLoadFailed} {
		f.dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			published = append(published, e.Type)
			return nil
		})
	}

	status, err := f.directory.Reload(context.Background(), "startup")
	require.NoError(t, err)
	assert.Equal(t, domain.LoadStateLoaded, status.State)
	assert.Equal(t, 20, status.Count)

	f.upstream.FailWith(http.StatusInternalServerError)
	status, err = f.directory.Reload(context.Background(), "admin")
	assertCode(t, err, apperrors.CodeUnavailable)
	assert.Equal(t, domain.LoadStateFailed, status.State)
	assert.Empty(t, f.directory.All(), "failed reload clears the roster")

	assert.Equal(t, []events.EventType{events.EventRosterLoaded, events.EventRosterLoadFailed}, published)
}

func TestDetail(t *testing.T) {
	f := newFixture(t, 30)
	f.reload(t)
	ctx := context.Background()

	detail, err := f.directory.Detail(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.ID)
	assert.Len(t, detail.PerformanceHistory, 4)

	hits := f.upstream.Hits()
	detail, err = f.directory.Detail(ctx, 25)
	require.NoError(t, err, "ids beyond the first page come from the upstream")
	assert.Equal(t, 25, detail.ID)
	assert.Equal(t, hits+1, f.upstream.Hits())

	_, err = f.directory.Detail(ctx, 999)
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = f.directory.Detail(ctx, 0)
	assertCode(t, err, apperrors.CodeValidation)

	f.upstream.FailWith(http.StatusServiceUnavailable)
	_, err = f.directory.Detail(ctx, 26)
	assertCode(t, err, apperrors.CodeUnavailable)
}

func TestToggleRecordsActivity(t *testing.T) {
	f := newFixture(t, 20)
	f.reload(t)
	ctx := context.Background()
	registry := bookmark.NewRegistry()

	added, err := f.bookmarks.Toggle(ctx, "s1", registry, 4)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = f.bookmarks.Toggle(ctx, "s1", registry, 9)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = f.bookmarks.Toggle(ctx, "s1", registry, 4)
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, []int{9}, registry.IDs())
	assert.Equal(t, 3, f.repo.Len())

	summary := f.bookmarks.Summary(registry)
	assert.Equal(t, 1, summary.Count)

	_, err = f.bookmarks.Toggle(ctx, "s1", registry, 500)
	assertCode(t, err, apperrors.CodeNotFound)
	assert.Equal(t, 3, f.repo.Len())
}

func TestToggleRemovesBookmarkMissingFromRoster(t *testing.T) {
	f := newFixture(t, 20)
	f.reload(t)
	registry := bookmark.NewRegistry()
	_, err := f.bookmarks.Toggle(context.Background(), "s1", registry, 2)
	require.NoError(t, err)

	f.upstream.FailWith(http.StatusBadGateway)
	_, _ = f.directory.Reload(context.Background(), "test")

	added, err := f.bookmarks.Toggle(context.Background(), "s1", registry, 2)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Zero(t, registry.Len())
}

func TestBookmarkTrend(t *testing.T) {
	f := newFixture(t, 20)
	f.reload(t)
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	f.analytics.now = func() time.Time { return now }
	registry := bookmark.NewRegistry()

	for _, at := range []time.Time{now.AddDate(0, -1, 0), now, now} {
		at := at
		f.bookmarks.now = func() time.Time { return at }
		id := registry.Len() + 1
		_, err := f.bookmarks.Toggle(context.Background(), "s1", registry, id)
		require.NoError(t, err)
	}

	points, err := f.analytics.BookmarkTrend(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendPoint{
		{Month: "2024-01", Added: 0},
		{Month: "2024-02", Added: 1},
		{Month: "2024-03", Added: 2},
	}, points)

	points, err = f.analytics.BookmarkTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	for _, months := range []int{-1, MaxTrendMonths + 1} {
		_, err = f.analytics.BookmarkTrend(context.Background(), months)
		assertCode(t, err, apperrors.CodeValidation)
	}
}

func TestDepartmentsAndExport(t *testing.T) {
	f := newFixture(t, 20)
	f.reload(t)
	registry := bookmark.NewRegistry()
	_, err := f.bookmarks.Toggle(context.Background(), "s1", registry, 1)
	require.NoError(t, err)

	rows := f.analytics.Departments(registry)
	require.Len(t, rows, len(domain.Departments))
	total, marked := 0, 0
	for _, r := range rows {
		total += r.Employees
		marked += r.Bookmarked
	}
	assert.Equal(t, 20, total)
	assert.Equal(t, 1, marked)

	anonymous := f.analytics.Departments(nil)
	for _, r := range anonymous {
		assert.Zero(t, r.Bookmarked)
	}

	data, err := f.analytics.Export(registry)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
