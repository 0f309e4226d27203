package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// RosterCache stores the last fetched upstream page.
type RosterCache interface {
	Get(ctx context.Context) ([]domain.UpstreamUser, bool, error)
	Put(ctx context.Context, users []domain.UpstreamUser) error
}

// rosterEntry is stored as a single Redis string value.
type rosterEntry struct {
	Users    []domain.UpstreamUser `json:"users"`
	CachedAt time.Time             `json:"cached_at"`
}

func (e *rosterEntry) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

func (e *rosterEntry) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}

type redisRosterCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRosterCache builds a Redis-backed cache. A nil client or non-positive ttl
// yields a cache that never hits.
func NewRosterCache(client *redis.Client, key string, ttl time.Duration) RosterCache {
	if client == nil || ttl <= 0 {
		return noopRosterCache{}
	}
	return &redisRosterCache{client: client, key: key, ttl: ttl}
}

func (c *redisRosterCache) Get(ctx context.Context) ([]domain.UpstreamUser, bool, error) {
	var entry rosterEntry
	if err := c.client.Get(ctx, c.key).Scan(&entry); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Users, true, nil
}

func (c *redisRosterCache) Put(ctx context.Context, users []domain.UpstreamUser) error {
	entry := &rosterEntry{Users: users, CachedAt: time.Now().UTC()}
	return c.client.Set(ctx, c.key, entry, c.ttl).Err()
}

type noopRosterCache struct{}

func (noopRosterCache) Get(context.Context) ([]domain.UpstreamUser, bool, error) {
	return nil, false, nil
}

func (noopRosterCache) Put(context.Context, []domain.UpstreamUser) error {
	return nil
}
