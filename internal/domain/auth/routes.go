package auth

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the auth router.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSvc))
		r.Get("/me", h.Me)
		r.Put("/me", h.UpdateMe)
	})

	return r
}
