package booking

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the booking router.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole("client"))
		r.Post("/{photographerID}", h.Book)
	})

	r.Get("/{id}", h.Get)

	return r
}

// PhotographerRoutes returns the appointment router mounted under
// /photographers/appointments.
func (h *Handler) PhotographerRoutes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))
	r.Use(middleware.RequireRole("photographer"))

	r.Get("/", h.ListMine)
	r.Put("/{id}/status", h.UpdateStatus)

	return r
}
