package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/period"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
)

// ProfileResolver maps an authenticated account to its photographer profile.
type ProfileResolver interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*photographer.Profile, error)
}

// Handler handles earnings HTTP requests.
type Handler struct {
	service  *Service
	profiles ProfileResolver
}

// NewHandler creates a payment handler.
func NewHandler(service *Service, profiles ProfileResolver) *Handler {
	return &Handler{service: service, profiles: profiles}
}

// Earnings handles GET /photographers/earnings: the caller's payment
// records for the requested window plus aggregated totals.
func (h *Handler) Earnings(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load photographer profile")
		response.InternalError(w)
		return
	}
	if profile == nil {
		response.NotFound(w, "Photographer profile not found")
		return
	}

	q := r.URL.Query()
	payments, report, err := h.service.Earnings(r.Context(), profile.ID, q.Get("period"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		if errors.Is(err, period.ErrInvalidPeriod) {
			response.BadRequest(w, "Invalid period parameters")
			return
		}
		log.Error().Err(err).Str("photographer_id", profile.ID.String()).Msg("Failed to compute earnings")
		response.InternalError(w)
		return
	}

	items := make([]interface{}, 0, len(payments))
	for i := range payments {
		items = append(items, map[string]interface{}{
			"payment":      payments[i].ToResponse(),
			"client_name":  payments[i].ClientName,
			"client_email": payments[i].ClientEmail,
		})
	}

	response.OK(w, map[string]interface{}{
		"payments": items,
		"report":   report,
	})
}
