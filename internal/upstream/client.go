package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/config"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// ErrMalformed reports a response body that does not match the expected shape.
var ErrMalformed = errors.New("malformed upstream payload")

// Source supplies raw user records from the demo directory.
type Source interface {
	FetchPage(ctx context.Context, limit int) ([]domain.UpstreamUser, error)
	FetchUser(ctx context.Context, id int) (domain.UpstreamUser, error)
}

// Client reads the demo users API over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fiber.Client
}

type pageResponse struct {
	Users *[]domain.UpstreamUser `json:"users"`
	Total int                    `json:"total"`
	Skip  int                    `json:"skip"`
	Limit int                    `json:"limit"`
}

// NewClient builds a client for the configured base URL.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout(),
		http:    fiber.AcquireClient(),
	}
}

// FetchPage issues GET /users?limit=N. The request is attempted once.
func (c *Client) FetchPage(ctx context.Context, limit int) ([]domain.UpstreamUser, error) {
	body, err := c.get(ctx, "/users?limit="+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	var resp pageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Users == nil {
		return nil, fmt.Errorf("%w: missing users", ErrMalformed)
	}
	return *resp.Users, nil
}

// FetchUser issues GET /users/{id}.
func (c *Client) FetchUser(ctx context.Context, id int) (domain.UpstreamUser, error) {
	var user domain.UpstreamUser
	body, err := c.get(ctx, "/users/"+strconv.Itoa(id))
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return user, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if user.ID == 0 {
		return user, fmt.Errorf("%w: missing id", ErrMalformed)
	}
	return user, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	// the agent cannot be cancelled mid-flight; honor cancellation before dialing
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	agent := c.http.Get(c.baseURL + path)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("GET %s: %w", path, errors.Join(errs...))
	}
	switch {
	case code == http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", path, apperrors.ErrNotFound)
	case code < 200 || code >= 300:
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, code)
	}
	return body, nil
}

var _ Source = (*Client)(nil)
