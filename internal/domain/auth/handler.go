package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/validator"
)

const maxAvatarSize = 8 << 20 // 8 MiB

// Handler handles authentication HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates an auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Conflict(w, "Email already registered")
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, "Role must be client or photographer")
		case errors.Is(err, ErrPhotographerDetails):
			response.BadRequest(w, "Photographer registration requires specialization, fee and availability")
		default:
			log.Error().Err(err).Msg("Registration failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, result)
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("Login failed")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// Refresh handles POST /auth/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	result, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrRefreshTokenRequired):
			response.BadRequest(w, "Refresh token required")
		case errors.Is(err, ErrInvalidRefreshToken), errors.Is(err, ErrUserNotFound):
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			log.Error().Err(err).Msg("Token refresh failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		log.Error().Err(err).Msg("Logout failed")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]interface{}{"message": "Logged out"})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, "Account not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load account")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// UpdateMe handles PUT /auth/me (multipart form: name, contact, photographer
// fields, profile_image file).
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	update := ProfileUpdate{
		Name:           r.FormValue("name"),
		Contact:        r.FormValue("contact"),
		Specialization: r.FormValue("specialization"),
	}
	if v := r.FormValue("experience_years"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil || years < 0 {
			response.BadRequest(w, "Invalid experience_years")
			return
		}
		update.ExperienceYears = years
	}
	if v := r.FormValue("fee_per_session"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil || fee <= 0 {
			response.BadRequest(w, "Invalid fee_per_session")
			return
		}
		update.FeePerSession = fee
	}

	if file, _, err := r.FormFile("profile_image"); err == nil {
		defer file.Close()
		update.Image = file
	}

	account, err := h.service.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, "Account not found")
		case errors.Is(err, ErrInvalidImage):
			response.BadRequest(w, "Unsupported or corrupt image file")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("Profile update failed")
			response.InternalError(w)
		}
		return
	}

	resp := account.ToResponse()
	if account.ProfileImage.Valid {
		resp.ProfileImage = h.service.AvatarURL(account.ProfileImage.String)
	}
	response.OK(w, resp)
}
