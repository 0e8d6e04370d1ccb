package report

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/pkg/response"
)

// Handler handles report HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a report handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Generate handles GET /reports?start_date&end_date
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	report, err := h.service.Generate(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			response.BadRequest(w, "Invalid date format. Please use YYYY-MM-DD.")
			return
		}
		log.Error().Err(err).Msg("Failed to generate report")
		response.InternalError(w)
		return
	}

	response.OK(w, report)
}
