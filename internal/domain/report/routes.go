package report

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the report router. Reports are public.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Generate)

	return r
}
