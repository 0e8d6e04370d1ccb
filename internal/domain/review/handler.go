package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/middleware"
	"github.com/snaphire/snaphire-api/internal/pkg/response"
	"github.com/snaphire/snaphire-api/internal/pkg/validator"
)

// Handler handles review HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a review handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /reviews (client).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetUserID(r.Context())

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	photographerID, err := uuid.Parse(req.PhotographerID)
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	review, err := h.service.Create(r.Context(), clientID, photographerID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, photographer.ErrProfileNotFound) {
			response.NotFound(w, "Photographer not found")
			return
		}
		log.Error().Err(err).Str("photographer_id", req.PhotographerID).Msg("Failed to create review")
		response.InternalError(w)
		return
	}

	response.Created(w, review.ToResponse())
}

// Get handles GET /reviews/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid review id")
		return
	}

	review, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			response.NotFound(w, "Review not found")
			return
		}
		log.Error().Err(err).Str("review_id", id.String()).Msg("Failed to get review")
		response.InternalError(w)
		return
	}

	response.OK(w, review.ToResponse())
}

// ListForPhotographer handles GET /reviews/photographer/{id}
func (h *Handler) ListForPhotographer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	reviews, err := h.service.ListForPhotographer(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("photographer_id", id.String()).Msg("Failed to list reviews")
		response.InternalError(w)
		return
	}

	response.OK(w, reviewerItems(reviews))
}

// Summary handles GET /reviews/photographer/{id}/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photographer id")
		return
	}

	summary, err := h.service.Summarize(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("photographer_id", id.String()).Msg("Failed to summarize reviews")
		response.InternalError(w)
		return
	}

	response.OK(w, summary)
}

// ListOwn handles GET /photographers/reviews: reviews of the caller's profile.
func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reviews, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		if errors.Is(err, photographer.ErrProfileNotFound) {
			response.NotFound(w, "Photographer profile not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list own reviews")
		response.InternalError(w)
		return
	}

	response.OK(w, reviewerItems(reviews))
}

// Update handles PUT /reviews/{id} (author only).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid review id")
		return
	}

	var req UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	review, err := h.service.Update(r.Context(), authorID, id, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrReviewNotFound):
			response.NotFound(w, "Review not found")
		case errors.Is(err, ErrNotAuthor):
			response.Forbidden(w, "Only the author may modify this review")
		default:
			log.Error().Err(err).Str("review_id", id.String()).Msg("Failed to update review")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, review.ToResponse())
}

// Delete handles DELETE /reviews/{id} (author only).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	authorID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid review id")
		return
	}

	if err := h.service.Delete(r.Context(), authorID, id); err != nil {
		switch {
		case errors.Is(err, ErrReviewNotFound):
			response.NotFound(w, "Review not found")
		case errors.Is(err, ErrNotAuthor):
			response.Forbidden(w, "Only the author may modify this review")
		default:
			log.Error().Err(err).Str("review_id", id.String()).Msg("Failed to delete review")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

func reviewerItems(reviews []WithReviewer) []interface{} {
	items := make([]interface{}, 0, len(reviews))
	for i := range reviews {
		item := map[string]interface{}{
			"review":        reviews[i].ToResponse(),
			"reviewer_name": reviews[i].ReviewerName,
		}
		if reviews[i].ReviewerImage.Valid {
			item["reviewer_image"] = reviews[i].ReviewerImage.String
		}
		items = append(items, item)
	}
	return items
}
