package bookmark

import (
	"sync"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// Registry is an ordered set of bookmarked employees. A single instance is shared
// by every consumer of a session, so a toggle is visible to all of them.
type Registry struct {
	mu      sync.RWMutex
	entries []domain.Employee
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Toggle removes the employee if present and appends it otherwise. It returns
// whether the employee is bookmarked afterwards.
func (r *Registry) Toggle(e domain.Employee) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.entries {
		if existing.ID == e.ID {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return false
		}
	}
	r.entries = append(r.entries, e)
	return true
}

// IsBookmarked reports membership by id.
func (r *Registry) IsBookmarked(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// All returns the bookmarked employees in the order they were added.
func (r *Registry) All() []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Employee, len(r.entries))
	copy(out, r.entries)
	return out
}

// IDs returns the bookmarked ids in insertion order.
func (r *Registry) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.ID)
	}
	return out
}

// Len returns the number of bookmarks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
