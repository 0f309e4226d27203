package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/api/dto"
	"github.com/spec-kit/employee-dashboard/internal/service"
)

// BookmarksHandler manages the caller's bookmarks.
type BookmarksHandler struct {
	service *service.BookmarkService
}

// NewBookmarksHandler constructs handler.
func NewBookmarksHandler(bookmarkService *service.BookmarkService) *BookmarksHandler {
	return &BookmarksHandler{service: bookmarkService}
}

// List GET /bookmarks.
func (h *BookmarksHandler) List(c *fiber.Ctx) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	items := h.service.List(session.Bookmarks)
	return c.JSON(fiber.Map{"data": dto.Employees(items, session.Bookmarks.IsBookmarked)})
}

// Toggle POST /bookmarks/:id/toggle.
func (h *BookmarksHandler) Toggle(c *fiber.Ctx) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	id, err := employeeID(c)
	if err != nil {
		return err
	}
	bookmarked, err := h.service.Toggle(c.UserContext(), session.ID, session.Bookmarks, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ToggleBookmarkResponse{
		EmployeeID: id,
		Bookmarked: bookmarked,
		Total:      session.Bookmarks.Len(),
	}})
}

// Summary GET /bookmarks/summary.
func (h *BookmarksHandler) Summary(c *fiber.Ctx) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	summary := h.service.Summary(session.Bookmarks)
	return c.JSON(fiber.Map{"data": dto.BookmarkSummaryResponse{
		Count:         summary.Count,
		AverageRating: summary.AverageRating,
	}})
}
