package payment

import (
	"github.com/go-chi/chi/v5"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

// Routes returns the earnings router mounted under /photographers/earnings.
func (h *Handler) Routes(jwtSvc *jwt.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Auth(jwtSvc))
	r.Use(middleware.RequireRole("photographer"))

	r.Get("/", h.Earnings)

	return r
}
