package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/citizen-services/internal/api/http/handlers"
	"github.com/spec-kit/citizen-services/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Catalog        *handlers.CatalogHandler
	Desk           *handlers.DeskHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Get("/users", cfg.Users.List)
	api.Get("/users/:id/documents", cfg.Users.Documents)
	api.Get("/users/:id/applications", cfg.Users.Applications)

	api.Get("/tickets", cfg.Tickets.List)
	api.Post("/tickets", cfg.Tickets.Create)

	api.Get("/schemes/search", cfg.Catalog.Search)
	api.Get("/schemes", cfg.Catalog.Schemes)
	api.Get("/categories", cfg.Catalog.Categories)
	api.Get("/categories/:slug", cfg.Catalog.Category)

	desk := api.Group("/desk", cfg.AuthMiddleware.Handle, auth.RequireDesk())
	desk.Get("/tickets", cfg.Desk.List)
	desk.Get("/tickets/:id", cfg.Desk.Get)
	desk.Patch("/tickets/:id", cfg.Desk.Update)
	desk.Post("/tickets/:id/status", cfg.Desk.ChangeStatus)
	desk.Post("/tickets/:id/triage", cfg.Desk.Triage)
	desk.Post("/tickets/:id/view", cfg.Desk.MarkViewed)
	desk.Post("/tickets/:id/issue", cfg.Desk.FlagIssue)
	desk.Get("/views/status", cfg.Desk.StatusBoard)
	desk.Get("/views/issues", cfg.Desk.Issues)
	desk.Get("/views/recent", cfg.Desk.Recent)
	desk.Get("/stats", cfg.Desk.Overview)
	desk.Get("/stats/me", cfg.Desk.PersonalStats)
}
