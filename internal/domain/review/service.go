package review

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
)

// Store is the review persistence surface.
type Store interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]WithReviewer, error)
	RatingCounts(ctx context.Context, photographerID uuid.UUID) (map[int]int, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileResolver looks up photographer profiles.
type ProfileResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*photographer.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*photographer.Profile, error)
}

// Service implements review use cases.
type Service struct {
	repo     Store
	profiles ProfileResolver
}

// NewService creates the review service.
func NewService(repo Store, profiles ProfileResolver) *Service {
	return &Service{repo: repo, profiles: profiles}
}

// Create stores a new review. A client may review the same photographer more
// than once; each review stands on its own.
func (s *Service) Create(ctx context.Context, clientID, photographerID uuid.UUID, rating int, comment string) (*Review, error) {
	profile, err := s.profiles.GetByID(ctx, photographerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, photographer.ErrProfileNotFound
	}

	now := time.Now()
	review := &Review{
		ID:             uuid.New(),
		PhotographerID: photographerID,
		ClientID:       clientID,
		Rating:         rating,
		Comment:        comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Get returns a single review.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// ListForPhotographer returns a photographer's reviews with reviewer info.
func (s *Service) ListForPhotographer(ctx context.Context, photographerID uuid.UUID) ([]WithReviewer, error) {
	return s.repo.ListByPhotographer(ctx, photographerID)
}

// ListOwn returns reviews of the caller's own photographer profile.
func (s *Service) ListOwn(ctx context.Context, photographerUserID uuid.UUID) ([]WithReviewer, error) {
	profile, err := s.profiles.GetByUserID(ctx, photographerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, photographer.ErrProfileNotFound
	}
	return s.repo.ListByPhotographer(ctx, profile.ID)
}

// Summarize aggregates a photographer's ratings. An unreviewed photographer
// yields average 0.0 with a zeroed distribution.
func (s *Service) Summarize(ctx context.Context, photographerID uuid.UUID) (*Summary, error) {
	counts, err := s.repo.RatingCounts(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Distribution: make(map[string]int, 5)}
	total := 0
	for rating := 1; rating <= 5; rating++ {
		n := counts[rating]
		summary.Distribution[strconv.Itoa(rating)] = n
		summary.Count += n
		total += rating * n
	}
	if summary.Count > 0 {
		summary.AverageRating = float64(total) / float64(summary.Count)
	}
	return summary, nil
}

// Update changes a review's rating and comment. Author only.
func (s *Service) Update(ctx context.Context, authorID, reviewID uuid.UUID, rating int, comment string) (*Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if review.ClientID != authorID {
		return nil, ErrNotAuthor
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review. Author only.
func (s *Service) Delete(ctx context.Context, authorID, reviewID uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.ClientID != authorID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, reviewID)
}
