package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the admin router. Every route requires the admin role;
// a client token never reaches the handlers.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))
	r.Use(middleware.RequireRole("admin"))

	r.Get("/dashboard/stats", h.DashboardStats)
	r.Get("/users", h.ListUsers)
	r.Get("/photographers", h.ListPhotographers)
	r.Get("/appointments", h.ListAppointments)
	r.Get("/payments", h.ListPayments)
	r.Put("/photographers/{id}/status", h.DecideProfile)

	return r
}
