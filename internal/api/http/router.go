package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/employee-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Metrics           *handlers.MetricsHandler
	Sessions          *handlers.SessionsHandler
	Employees         *handlers.EmployeesHandler
	Bookmarks         *handlers.BookmarksHandler
	Analytics         *handlers.AnalyticsHandler
	Admin             *handlers.AdminHandler
	SessionMiddleware *auth.SessionMiddleware
	AdminKeyHash      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	app.Post("/sessions", cfg.Sessions.Create)
	app.Delete("/sessions", cfg.SessionMiddleware.Require, cfg.Sessions.Delete)

	employees := app.Group("/employees", cfg.SessionMiddleware.Optional)
	employees.Get("/", cfg.Employees.List)
	employees.Get("/stats", cfg.Employees.Stats)
	employees.Get("/status", cfg.Employees.Status)
	employees.Get("/:id", cfg.Employees.Detail)

	bookmarks := app.Group("/bookmarks", cfg.SessionMiddleware.Require)
	bookmarks.Get("/", cfg.Bookmarks.List)
	bookmarks.Get("/summary", cfg.Bookmarks.Summary)
	bookmarks.Post("/:id/toggle", cfg.Bookmarks.Toggle)

	analytics := app.Group("/analytics", cfg.SessionMiddleware.Optional)
	analytics.Get("/departments", cfg.Analytics.Departments)
	analytics.Get("/bookmark-trend", cfg.Analytics.BookmarkTrend)
	analytics.Get("/export.xlsx", cfg.Analytics.Export)

	admin := app.Group("/admin", auth.RequireAdminKey(cfg.AdminKeyHash))
	admin.Post("/roster/reload", cfg.Admin.ReloadRoster)
}
