package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/api/dto"
	"github.com/spec-kit/employee-dashboard/internal/service"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler serves rollups and exports.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Departments GET /analytics/departments.
func (h *AnalyticsHandler) Departments(c *fiber.Ctx) error {
	rows := h.service.Departments(sessionRegistry(c))
	return c.JSON(fiber.Map{"data": dto.Departments(rows)})
}

// BookmarkTrend GET /analytics/bookmark-trend.
func (h *AnalyticsHandler) BookmarkTrend(c *fiber.Ctx) error {
	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apperrors.NewValidationError("months must be a positive integer", map[string]any{"months": raw})
		}
		months = parsed
	}
	points, err := h.service.BookmarkTrend(c.UserContext(), months)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.Trend(points)})
}

// Export GET /analytics/export.xlsx.
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	data, err := h.service.Export(sessionRegistry(c))
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
