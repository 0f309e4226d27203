package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

func TestMemoryBookmarkEventsMonthlyAdds(t *testing.T) {
	ctx := context.Background()
	repo := NewBookmarkEventRepository(nil)
	mem, ok := repo.(*MemoryBookmarkEventRepository)
	require.True(t, ok, "nil pool selects the memory repository")

	at := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return ts
	}
	events := []domain.BookmarkEvent{
		{ID: "1", EmployeeID: 1, Action: domain.BookmarkAdded, CreatedAt: at("2026-01-03T10:00:00Z")},
		{ID: "2", EmployeeID: 2, Action: domain.BookmarkAdded, CreatedAt: at("2026-03-01T00:00:00Z")},
		{ID: "3", EmployeeID: 2, Action: domain.BookmarkRemoved, CreatedAt: at("2026-03-02T00:00:00Z")},
		{ID: "4", EmployeeID: 3, Action: domain.BookmarkAdded, CreatedAt: at("2026-03-31T23:59:59Z")},
		{ID: "5", EmployeeID: 4, Action: domain.BookmarkAdded, CreatedAt: at("2025-12-31T23:59:59Z")},
	}
	for i := range events {
		require.NoError(t, repo.Create(ctx, &events[i]))
	}
	assert.Equal(t, 5, mem.Len())

	counts, err := repo.MonthlyAdds(ctx, at("2026-01-01T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-01": 1, "2026-03": 2}, counts)
}

func TestNoopRosterCache(t *testing.T) {
	ctx := context.Background()
	cache := NewRosterCache(nil, "k", time.Minute)

	require.NoError(t, cache.Put(ctx, []domain.UpstreamUser{{ID: 1}}))
	users, hit, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, users)
}

func TestRosterEntryBinaryEncoding(t *testing.T) {
	in := &rosterEntry{Users: []domain.UpstreamUser{{ID: 4, FirstName: "Ada"}}, CachedAt: time.Unix(0, 0).UTC()}
	data, err := in.MarshalBinary()
	require.NoError(t, err)

	var out rosterEntry
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, in.Users, out.Users)
}
