package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/auth"
	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

func requireSession(c *fiber.Ctx) (*auth.Session, error) {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("session required")
	}
	return session, nil
}

func sessionRegistry(c *fiber.Ctx) *bookmark.Registry {
	if session, ok := auth.SessionFromContext(c); ok {
		return session.Bookmarks
	}
	return nil
}

func bookmarkLookup(c *fiber.Ctx) analytics.IsBookmarked {
	if registry := sessionRegistry(c); registry != nil {
		return registry.IsBookmarked
	}
	return nil
}

func employeeID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid employee id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
