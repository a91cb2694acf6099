package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elegance-studio/salon-service/internal/api/http/handlers"
	"github.com/elegance-studio/salon-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Staff           *handlers.StaffHandler
	Appointments    *handlers.AppointmentsHandler
	AdminMiddleware *auth.AdminMiddleware
}

// RegisterRoutes wires HTTP routes. Staff mutations require the admin
// token; read operations and the booking flow are open, as they were in
// the original salon pages.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/admin/login", cfg.Auth.Login)

	staff := app.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Get("/available", cfg.Staff.Available)

	staffAdmin := staff.Group("", cfg.AdminMiddleware.Handle)
	staffAdmin.Post("/", cfg.Staff.Create)
	staffAdmin.Put("/:id", cfg.Staff.Update)
	staffAdmin.Delete("/:id", cfg.Staff.Delete)

	appointments := app.Group("/appointments")
	appointments.Post("/", cfg.Appointments.Book)
	appointments.Get("/lookup", cfg.Appointments.Lookup)
	appointments.Get("/", cfg.Appointments.List)
	appointments.Delete("/:id", cfg.Appointments.Cancel)
}
