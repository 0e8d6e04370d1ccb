package client

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/booking"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
)

// Handler handles client HTTP requests.
type Handler struct {
	bookings *booking.Service
	users    user.Repository
}

// NewHandler creates a client handler.
func NewHandler(bookings *booking.Service, users user.Repository) *Handler {
	return &Handler{bookings: bookings, users: users}
}

// Me handles GET /clients/me: profile plus own appointments sorted by date.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetUserID(r.Context())

	account, err := h.users.GetByID(r.Context(), clientID)
	if err != nil || account == nil {
		if err != nil {
			log.Error().Err(err).Str("user_id", clientID.String()).Msg("Failed to load client account")
		}
		response.NotFound(w, "Account not found")
		return
	}

	appointments, err := h.bookings.ListForClient(r.Context(), clientID)
	if err != nil {
		log.Error().Err(err).Str("user_id", clientID.String()).Msg("Failed to list client appointments")
		response.InternalError(w)
		return
	}

	items := make([]interface{}, 0, len(appointments))
	for i := range appointments {
		items = append(items, map[string]interface{}{
			"appointment":       appointments[i].ToResponse(),
			"photographer_name": appointments[i].PhotographerName.String,
		})
	}

	response.OK(w, map[string]interface{}{
		"profile":      account.ToResponse(),
		"appointments": items,
	})
}

// CancelAppointment handles DELETE /clients/appointments/{id}. Repeating the
// call on an already-cancelled appointment succeeds with the same payload.
func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	appointment, err := h.bookings.CancelByClient(r.Context(), clientID, id)
	if err != nil {
		if errors.Is(err, booking.ErrAppointmentMissing) {
			response.NotFound(w, "Appointment not found")
			return
		}
		log.Error().Err(err).Str("appointment_id", id.String()).Msg("Failed to cancel appointment")
		response.InternalError(w)
		return
	}

	response.OK(w, appointment.ToResponse())
}
