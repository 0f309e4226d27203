package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/api/dto"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/service"
	apperrors "github.com/spec-kit/employee-dashboard/pkg/util/errorutil"
)

// EmployeesHandler serves roster endpoints.
type EmployeesHandler struct {
	service *service.DirectoryService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(directoryService *service.DirectoryService) *EmployeesHandler {
	return &EmployeesHandler{service: directoryService}
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return err
	}
	employees := h.service.List(criteria)
	return c.JSON(fiber.Map{"data": dto.Employees(employees, bookmarkLookup(c))})
}

// Stats GET /employees/stats.
func (h *EmployeesHandler) Stats(c *fiber.Ctx) error {
	stats := h.service.Statistics()
	resp := dto.StatisticsResponse{
		TotalCount:         stats.TotalCount,
		AverageRating:      stats.AverageRating,
		HighPerformerCount: stats.HighPerformerCount,
	}
	if registry := sessionRegistry(c); registry != nil {
		count := registry.Len()
		resp.BookmarkCount = &count
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Status GET /employees/status.
func (h *EmployeesHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": rosterStatus(h.service)})
}

// Detail GET /employees/:id.
func (h *EmployeesHandler) Detail(c *fiber.Ctx) error {
	id, err := employeeID(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeDetail(detail, bookmarkLookup(c))})
}

func parseCriteria(c *fiber.Ctx) (domain.Criteria, error) {
	criteria := domain.Criteria{SearchText: strings.TrimSpace(c.Query("q"))}

	if raw := strings.TrimSpace(c.Query("department")); raw != "" && !strings.EqualFold(raw, "all") {
		dept, ok := domain.ParseDepartment(raw)
		if !ok {
			return criteria, apperrors.NewValidationError("unknown department", map[string]any{
				"department": raw,
				"allowed":    domain.Departments,
			})
		}
		criteria.Department = &dept
	}

	if raw := strings.TrimSpace(c.Query("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 0 || rating > domain.MaxRating {
			return criteria, apperrors.NewValidationError("rating must be between 0 and 5", map[string]any{"rating": raw})
		}
		criteria.Rating = rating
	}
	return criteria, nil
}

func rosterStatus(directoryService *service.DirectoryService) dto.RosterStatusResponse {
	status := directoryService.Status()
	resp := dto.RosterStatusResponse{State: status.State, Count: status.Count, Error: status.Error}
	if !status.LoadedAt.IsZero() {
		loadedAt := status.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}
