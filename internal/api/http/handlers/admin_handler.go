package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/service"
)

// AdminHandler exposes operator actions.
type AdminHandler struct {
	directory *service.DirectoryService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(directoryService *service.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directoryService}
}

// ReloadRoster POST /admin/roster/reload.
func (h *AdminHandler) ReloadRoster(c *fiber.Ctx) error {
	if _, err := h.directory.Reload(c.UserContext(), "admin"); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rosterStatus(h.directory)})
}
