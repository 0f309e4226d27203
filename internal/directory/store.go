package directory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/synth"
	"github.com/spec-kit/employee-dashboard/internal/upstream"
)

// Status describes the current roster load.
type Status struct {
	State    domain.LoadState
	Count    int
	Error    string
	LoadedAt time.Time
}

// Store holds the fetched roster and answers queries over it.
type Store struct {
	source upstream.Source
	limit  int
	logger *zap.Logger

	loadMu sync.Mutex

	mu       sync.RWMutex
	roster   []domain.Employee
	raw      map[int]domain.UpstreamUser
	state    domain.LoadState
	lastErr  error
	loadedAt time.Time
}

// NewStore builds an empty store that loads limit records from source.
func NewStore(source upstream.Source, limit int, logger *zap.Logger) *Store {
	return &Store{
		source: source,
		limit:  limit,
		logger: logger,
		raw:    map[int]domain.UpstreamUser{},
		state:  domain.LoadStateIdle,
	}
}

// Load fetches one page from the source in a single attempt. On failure the
// roster is left empty and the error is returned for diagnostics.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.Lock()
	s.state = domain.LoadStateLoading
	s.mu.Unlock()

	users, err := s.source.FetchPage(ctx, s.limit)
	if err != nil {
		s.logger.Error("roster load failed", zap.Error(err))
		s.mu.Lock()
		s.roster = nil
		s.raw = map[int]domain.UpstreamUser{}
		s.state = domain.LoadStateFailed
		s.lastErr = err
		s.mu.Unlock()
		return fmt.Errorf("load roster: %w", err)
	}

	roster := make([]domain.Employee, 0, len(users))
	raw := make(map[int]domain.UpstreamUser, len(users))
	for _, u := range users {
		if _, dup := raw[u.ID]; dup {
			s.logger.Warn("duplicate employee id in roster", zap.Int("id", u.ID))
			continue
		}
		raw[u.ID] = u
		roster = append(roster, synth.Employee(u))
	}

	s.mu.Lock()
	s.roster = roster
	s.raw = raw
	s.state = domain.LoadStateLoaded
	s.lastErr = nil
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info("roster loaded", zap.Int("count", len(roster)))
	return nil
}

// List returns the employees matching criteria, in fetch order.
func (s *Store) List(criteria domain.Criteria) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Employee, 0, len(s.roster))
	for _, e := range s.roster {
		if criteria.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}

// All returns a copy of the full roster.
func (s *Store) All() []domain.Employee {
	return s.List(domain.Criteria{})
}

// Get returns the roster entry for id.
func (s *Store) Get(id int) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.roster {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Employee{}, false
}

// Statistics summarizes the unfiltered roster.
func (s *Store) Statistics() domain.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.Statistics(s.roster)
}

// Detail builds the drill-down view for id, reading the upstream only when the
// id is not part of the loaded roster.
func (s *Store) Detail(ctx context.Context, id int) (domain.EmployeeDetail, error) {
	s.mu.RLock()
	u, ok := s.raw[id]
	s.mu.RUnlock()
	if ok {
		return synth.Detail(u), nil
	}

	u, err := s.source.FetchUser(ctx, id)
	if err != nil {
		return domain.EmployeeDetail{}, fmt.Errorf("fetch employee %d: %w", id, err)
	}
	return synth.Detail(u), nil
}

// Status reports the load lifecycle so callers can tell "empty" from "loading".
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{State: s.state, Count: len(s.roster), LoadedAt: s.loadedAt}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}
