package photographer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/validator"
)

// Handler handles photographer HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a photographer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /photographers. Only approved profiles are listed.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	photographers, err := h.service.ListApproved(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list photographers")
		response.InternalError(w)
		return
	}
	response.OK(w, photographers)
}

// Get handles GET /photographers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	detail, err := h.service.GetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, "Photographer not found")
			return
		}
		log.Error().Err(err).Str("photographer_id", id.String()).Msg("failed to get photographer")
		response.InternalError(w)
		return
	}
	response.OK(w, detail)
}

// GetSlots handles GET /photographers/{id}/slots?date=YYYY-MM-DD
func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required")
		return
	}

	slots, err := h.service.ResolveOfferableSlots(r.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			response.BadRequest(w, "Invalid date, expected YYYY-MM-DD")
		case errors.Is(err, ErrProfileNotFound):
			response.NotFound(w, "Photographer not found")
		default:
			log.Error().Err(err).Str("photographer_id", id.String()).Msg("failed to resolve slots")
			response.InternalError(w)
		}
		return
	}
	response.OK(w, map[string]interface{}{"date": date, "time_slots": slots})
}

// UpdateAvailability handles PUT /photographers/availability
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	profile, err := h.service.UpdateAvailability(r.Context(), userID, req.Availability)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, "Photographer not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update availability")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{
		"photographer_id": profile.ID.String(),
		"availability":    req.Availability,
	})
}

// UpdateDetails handles PUT /photographers/profile
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	profile, err := h.service.UpdateDetails(r.Context(), userID, req.Specialization, req.ExperienceYears, req.FeePerSession)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, "Photographer not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update photographer details")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{
		"photographer_id":  profile.ID.String(),
		"specialization":   profile.Specialization,
		"experience_years": profile.ExperienceYears,
		"fee_per_session":  profile.FeePerSession,
	})
}
