package photographer

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the photographer router.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	// Public catalogue
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/slots", h.GetSlots)

	// Photographer self-management
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSvc))
		r.Use(middleware.RequireRole("photographer"))

		r.Put("/availability", h.UpdateAvailability)
		r.Put("/profile", h.UpdateDetails)
	})

	return r
}
