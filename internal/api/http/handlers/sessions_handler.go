package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/api/dto"
	"github.com/spec-kit/employee-dashboard/internal/auth"
	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// SessionsHandler issues and ends sessions.
type SessionsHandler struct {
	tokens   *auth.TokenManager
	sessions *bookmark.Sessions
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(tokens *auth.TokenManager, sessions *bookmark.Sessions) *SessionsHandler {
	return &SessionsHandler{tokens: tokens, sessions: sessions}
}

// Create POST /sessions.
func (h *SessionsHandler) Create(c *fiber.Ctx) error {
	sessionID, token, expiresAt, err := h.tokens.NewSession()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SessionResponse{
		SessionID:   sessionID,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}})
}

// Delete DELETE /sessions discards the caller's bookmarks. The token stays
// valid until expiry but resolves to an empty registry.
func (h *SessionsHandler) Delete(c *fiber.Ctx) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	h.sessions.Drop(session.ID)
	return c.SendStatus(http.StatusNoContent)
}
