package review

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the review router.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/photographer/{id}", h.ListForPhotographer)
	r.Get("/photographer/{id}/summary", h.Summary)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSvc))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("client"))
			r.Post("/", h.Create)
		})

		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// PhotographerRoutes returns the router mounted under /photographers/reviews.
func (h *Handler) PhotographerRoutes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))
	r.Use(middleware.RequireRole("photographer"))

	r.Get("/", h.ListOwn)

	return r
}
