package client

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the client router.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))
	r.Use(middleware.RequireRole("client"))

	r.Get("/me", h.Me)
	r.Delete("/appointments/{id}", h.CancelAppointment)

	return r
}
