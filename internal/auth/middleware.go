package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

const sessionKey = "session"

// Session is the resolved caller session.
type Session struct {
	ID        string
	Bookmarks *bookmark.Registry
}

// SessionMiddleware validates bearer tokens and resolves session registries.
type SessionMiddleware struct {
	tokens   *TokenManager
	sessions *bookmark.Sessions
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions *bookmark.Sessions) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, sessions: sessions}
}

// Require enforces a valid session.
func (m *SessionMiddleware) Require(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}
	session, err := m.resolve(authHeader)
	if err != nil {
		return err
	}
	c.Locals(sessionKey, session)
	return c.Next()
}

// Optional attaches a session when a valid token is supplied and ignores the
// header otherwise.
func (m *SessionMiddleware) Optional(c *fiber.Ctx) error {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		if session, err := m.resolve(authHeader); err == nil {
			c.Locals(sessionKey, session)
		}
	}
	return c.Next()
}

func (m *SessionMiddleware) resolve(authHeader string) (*Session, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &Session{ID: claims.SessionID, Bookmarks: m.sessions.For(claims.SessionID, expiresAt)}, nil
}

// SessionFromContext retrieves the resolved session.
func SessionFromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*Session)
	return session, ok
}
