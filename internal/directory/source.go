package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/repository"
	"github.com/spec-kit/employee-dashboard/internal/upstream"
)

// CachedSource serves roster pages from the cache when present and writes back
// successful upstream reads. Cache failures never fail a fetch.
type CachedSource struct {
	next   upstream.Source
	cache  repository.RosterCache
	logger *zap.Logger
}

// NewCachedSource wraps next with cache.
func NewCachedSource(next upstream.Source, cache repository.RosterCache, logger *zap.Logger) *CachedSource {
	return &CachedSource{next: next, cache: cache, logger: logger}
}

// FetchPage returns the cached page if it holds at least limit users.
func (s *CachedSource) FetchPage(ctx context.Context, limit int) ([]domain.UpstreamUser, error) {
	users, hit, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("roster cache read failed", zap.Error(err))
	}
	if hit && len(users) >= limit {
		s.logger.Debug("roster served from cache", zap.Int("count", limit))
		return users[:limit], nil
	}

	users, err = s.next.FetchPage(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, users); err != nil {
		s.logger.Warn("roster cache write failed", zap.Error(err))
	}
	return users, nil
}

// FetchUser always reads through to the upstream.
func (s *CachedSource) FetchUser(ctx context.Context, id int) (domain.UpstreamUser, error) {
	return s.next.FetchUser(ctx, id)
}

var _ upstream.Source = (*CachedSource)(nil)
