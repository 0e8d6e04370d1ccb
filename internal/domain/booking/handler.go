package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a booking handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Book handles POST /bookings/{photographerID}
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetUserID(r.Context())

	photographerID, err := uuid.Parse(chi.URLParam(r, "photographerID"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	var req BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Book(r.Context(), BookRequest{
		PhotographerID:  photographerID,
		ClientID:        clientID,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.BadRequest(w, "Invalid booking request")
		case errors.Is(err, ErrPhotographerMissing):
			response.NotFound(w, "Photographer not found")
		case errors.Is(err, ErrSlotNotOffered):
			response.Error(w, http.StatusBadRequest, "SLOT_NOT_OFFERED", "Photographer does not offer this slot on that day")
		case errors.Is(err, ErrSlotAlreadyBooked):
			response.Error(w, http.StatusBadRequest, "SLOT_ALREADY_BOOKED", "Time slot already booked, choose another slot")
		case errors.Is(err, ErrPaymentDeclined):
			response.Error(w, http.StatusBadRequest, "PAYMENT_DECLINED", "Payment declined, please try another card")
		default:
			log.Error().Err(err).
				Str("photographer_id", photographerID.String()).
				Str("client_id", clientID.String()).
				Msg("Booking failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"appointment": result.Appointment.ToResponse(),
		"payment":     result.Payment.ToResponse(),
	})
}

// Get handles GET /bookings/{id} and returns the composite appointment view.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	details, err := h.service.GetDetails(r.Context(), id, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentMissing), errors.Is(err, user.ErrUserNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, ErrPhotographerMissing):
			response.NotFound(w, "Photographer not found")
		default:
			log.Error().Err(err).Str("appointment_id", id.String()).Msg("Failed to load appointment")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, details)
}

// ListMine handles GET /photographers/appointments: the photographer's
// appointment window with graph data. Accepts
// ?period=daily|weekly|monthly|custom plus start_date/end_date for custom.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	q := r.URL.Query()
	appointments, report, err := h.service.ListForPhotographer(r.Context(), userID, q.Get("period"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.BadRequest(w, "Invalid period parameters")
		case errors.Is(err, ErrPhotographerMissing):
			response.NotFound(w, "Photographer profile not found")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list appointments")
			response.InternalError(w)
		}
		return
	}

	items := make([]interface{}, 0, len(appointments))
	for i := range appointments {
		items = append(items, appointments[i].ToResponse())
	}

	response.OK(w, map[string]interface{}{
		"appointments": items,
		"graph":        report,
	})
}

// UpdateStatus handles PUT /bookings/{id}/status (photographer).
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	appointment, err := h.service.UpdateStatusByPhotographer(r.Context(), userID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.BadRequest(w, "Status must be completed or cancelled")
		case errors.Is(err, ErrPhotographerMissing):
			response.NotFound(w, "Photographer profile not found")
		case errors.Is(err, ErrAppointmentMissing):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Conflict(w, "Appointment is already completed or cancelled")
		default:
			log.Error().Err(err).Str("appointment_id", id.String()).Msg("Failed to update appointment status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, appointment.ToResponse())
}
