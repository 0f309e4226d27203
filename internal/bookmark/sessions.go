package bookmark

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	registry  *Registry
	expiresAt time.Time
}

// Sessions hands out one Registry per session id. Entries expire with the
// session token that created them.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	now     func() time.Time
}

// NewSessions returns an empty session table.
func NewSessions() *Sessions {
	return &Sessions{entries: make(map[string]*sessionEntry), now: time.Now}
}

// For returns the registry for sessionID, creating it on first use. Repeated
// calls return the same instance until the session expires. A zero expiresAt
// never expires.
func (s *Sessions) For(sessionID string, expiresAt time.Time) *Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if ok && entry.expired(s.now()) {
		ok = false
	}
	if !ok {
		entry = &sessionEntry{registry: NewRegistry()}
		s.entries[sessionID] = entry
	}
	entry.expiresAt = expiresAt
	return entry.registry
}

// Lookup returns the registry for a live sessionID without creating one.
func (s *Sessions) Lookup(sessionID string) (*Registry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, false
	}
	if entry.expired(s.now()) {
		delete(s.entries, sessionID)
		return nil, false
	}
	return entry.registry, true
}

// Drop forgets a session's bookmarks.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Sweep removes every session expired at now and returns how many were removed.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.Sweep(s.now())
			if onSweep != nil && removed > 0 {
				onSweep(removed)
			}
		}
	}
}

// Len returns the number of tracked sessions, including expired ones not yet swept.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (e *sessionEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
