package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// BookmarkEventRepository persists bookmark toggles.
type BookmarkEventRepository interface {
	Create(ctx context.Context, event *domain.BookmarkEvent) error
	// MonthlyAdds counts "added" events per UTC month ("2006-01") since the given time.
	MonthlyAdds(ctx context.Context, since time.Time) (map[string]int, error)
}

const monthLayout = "2006-01"

type bookmarkEventRepository struct {
	pool *pgxpool.Pool
}

// NewBookmarkEventRepository builds the repository. A nil pool selects the
// in-memory implementation.
func NewBookmarkEventRepository(pool *pgxpool.Pool) BookmarkEventRepository {
	if pool == nil {
		return NewMemoryBookmarkEventRepository()
	}
	return &bookmarkEventRepository{pool: pool}
}

func (r *bookmarkEventRepository) Create(ctx context.Context, event *domain.BookmarkEvent) error {
	const query = `
        INSERT INTO bookmark_events (id, session_id, employee_id, action, created_at)
        VALUES ($1,$2,$3,$4,$5)`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.SessionID,
		event.EmployeeID,
		string(event.Action),
		event.CreatedAt,
	)
	return err
}

func (r *bookmarkEventRepository) MonthlyAdds(ctx context.Context, since time.Time) (map[string]int, error) {
	const query = `
        SELECT to_char(date_trunc('month', created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month, COUNT(*)
        FROM bookmark_events
        WHERE action = 'added' AND created_at >= $1
        GROUP BY month`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, err
		}
		result[month] = count
	}
	return result, rows.Err()
}

// MemoryBookmarkEventRepository keeps events in process memory.
type MemoryBookmarkEventRepository struct {
	mu     sync.RWMutex
	events []domain.BookmarkEvent
}

// NewMemoryBookmarkEventRepository returns an empty repository.
func NewMemoryBookmarkEventRepository() *MemoryBookmarkEventRepository {
	return &MemoryBookmarkEventRepository{}
}

func (r *MemoryBookmarkEventRepository) Create(_ context.Context, event *domain.BookmarkEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *MemoryBookmarkEventRepository) MonthlyAdds(_ context.Context, since time.Time) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]int)
	for _, e := range r.events {
		if e.Action != domain.BookmarkAdded || e.CreatedAt.Before(since) {
			continue
		}
		result[e.CreatedAt.UTC().Format(monthLayout)]++
	}
	return result, nil
}

// Len reports the number of stored events.
func (r *MemoryBookmarkEventRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

var (
	_ BookmarkEventRepository = (*bookmarkEventRepository)(nil)
	_ BookmarkEventRepository = (*MemoryBookmarkEventRepository)(nil)
)
