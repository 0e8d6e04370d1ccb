package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates an admin handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// DecideProfileRequest is the approval payload.
type DecideProfileRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// DashboardStats handles GET /admin/dashboard/stats
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute dashboard stats")
		response.InternalError(w)
		return
	}
	response.OK(w, stats)
}

// ListUsers handles GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		response.InternalError(w)
		return
	}

	items := make([]interface{}, 0, len(users))
	for i := range users {
		items = append(items, users[i].ToResponse())
	}
	response.OK(w, items)
}

// ListPhotographers handles GET /admin/photographers
func (h *Handler) ListPhotographers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListPhotographers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list photographers")
		response.InternalError(w)
		return
	}

	items := make([]interface{}, 0, len(profiles))
	for i := range profiles {
		items = append(items, profiles[i].ToResponse())
	}
	response.OK(w, items)
}

// ListAppointments handles GET /admin/appointments
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.ListAppointments(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list appointments")
		response.InternalError(w)
		return
	}

	items := make([]interface{}, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		items = append(items, map[string]interface{}{
			"appointment":       a.ToResponse(),
			"photographer_name": a.PhotographerName.String,
			"client_name":       a.ClientName.String,
			"client_email":      a.ClientEmail.String,
		})
	}
	response.OK(w, items)
}

// ListPayments handles GET /admin/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list payments")
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
	response.OK(w, items)
}

// DecideProfile handles PUT /admin/photographers/{id}/status
func (h *Handler) DecideProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	var req DecideProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	profile, err := h.service.DecideProfile(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, photographer.ErrInvalidDecision):
			response.BadRequest(w, "Status must be approved or rejected")
		case errors.Is(err, photographer.ErrProfileNotFound):
			response.NotFound(w, "Photographer not found")
		default:
			log.Error().Err(err).Str("photographer_id", id.String()).Msg("Failed to update profile status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, profile.ToResponse())
}
