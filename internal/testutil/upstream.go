package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bxcodec/faker/v4"

	"github.com/spec-kit/employee-dashboard/internal/domain"
)

// FakeUsers returns n upstream users with ids 1..n and generated names.
func FakeUsers(n int) []domain.UpstreamUser {
	users := make([]domain.UpstreamUser, n)
	for i := range users {
		u := domain.UpstreamUser{
			ID:        i + 1,
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Phone:     faker.Phonenumber(),
			Age:       20 + i,
		}
		u.Address.Address = strconv.Itoa(100+i) + " Main Street"
		u.Address.City = "Springfield"
		u.Company.Title = "Engineer"
		users[i] = u
	}
	return users
}

// FakeUpstream serves the demo users API from memory.
type FakeUpstream struct {
	Server *httptest.Server
	Users  []domain.UpstreamUser

	status    atomic.Int32
	malformed atomic.Bool
	hits      atomic.Int64
}

// NewFakeUpstream starts a server and closes it when the test ends.
func NewFakeUpstream(t *testing.T, users []domain.UpstreamUser) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{Users: users}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL to configure clients with.
func (f *FakeUpstream) URL() string {
	return f.Server.URL
}

// FailWith makes every request return status; zero restores normal responses.
func (f *FakeUpstream) FailWith(status int) {
	f.status.Store(int32(status))
}

// SetMalformed makes every response body invalid JSON.
func (f *FakeUpstream) SetMalformed(on bool) {
	f.malformed.Store(on)
}

// Hits counts requests served so far.
func (f *FakeUpstream) Hits() int {
	return int(f.hits.Load())
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	if status := int(f.status.Load()); status != 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if f.malformed.Load() {
		_, _ = w.Write([]byte(`{"users": [`))
		return
	}

	switch {
	case r.URL.Path == "/users":
		limit := len(f.Users)
		if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l < limit {
			limit = l
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": f.Users[:limit],
			"total": len(f.Users),
			"skip":  0,
			"limit": limit,
		})
	case strings.HasPrefix(r.URL.Path, "/users/"):
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/users/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, u := range f.Users {
			if u.ID == id {
				_ = json.NewEncoder(w).Encode(u)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"User with id '` + strconv.Itoa(id) + `' not found"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
