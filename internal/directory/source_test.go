package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/testutil"
)

type memoryCache struct {
	users  []domain.UpstreamUser
	hit    bool
	getErr error
	putErr error
	puts   int
}

func (c *memoryCache) Get(context.Context) ([]domain.UpstreamUser, bool, error) {
	return c.users, c.hit, c.getErr
}

func (c *memoryCache) Put(_ context.Context, users []domain.UpstreamUser) error {
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	c.users, c.hit = users, true
	return nil
}

func TestCachedSourceWritesBackThenHits(t *testing.T) {
	src := &stubSource{users: testutil.FakeUsers(20)}
	cache := &memoryCache{}
	cached := NewCachedSource(src, cache, zap.NewNop())

	first, err := cached.FetchPage(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1, src.pageCalls)
	assert.Equal(t, 1, cache.puts)

	second, err := cached.FetchPage(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1, src.pageCalls, "second read served from cache")
	assert.Equal(t, first, second)
}

func TestCachedSourceShortEntryFallsThrough(t *testing.T) {
	src := &stubSource{users: testutil.FakeUsers(20)}
	cache := &memoryCache{users: testutil.FakeUsers(5), hit: true}

	users, err := NewCachedSource(src, cache, zap.NewNop()).FetchPage(context.Background(), 20)
	require.NoError(t, err)
	assert.Len(t, users, 20)
	assert.Equal(t, 1, src.pageCalls)
}

func TestCachedSourceIgnoresCacheErrors(t *testing.T) {
	src := &stubSource{users: testutil.FakeUsers(3)}
	cache := &memoryCache{getErr: errors.New("redis down"), putErr: errors.New("redis down")}

	users, err := NewCachedSource(src, cache, zap.NewNop()).FetchPage(context.Background(), 20)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCachedSourcePropagatesUpstreamError(t *testing.T) {
	src := &stubSource{err: errors.New("timeout")}
	cache := &memoryCache{}

	_, err := NewCachedSource(src, cache, zap.NewNop()).FetchPage(context.Background(), 20)
	assert.Error(t, err)
	assert.Zero(t, cache.puts)
}
