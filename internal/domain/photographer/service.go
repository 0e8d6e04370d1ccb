package photographer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore is the repository surface the service needs.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	GetWithUser(ctx context.Context, id uuid.UUID) (*ProfileWithUser, error)
	ListByStatus(ctx context.Context, status Status) ([]ProfileWithUser, error)
	UpdateDetails(ctx context.Context, profile *Profile) error
	GetAvailability(ctx context.Context, photographerID uuid.UUID) ([]AvailabilityEntry, error)
	SlotsForWeekday(ctx context.Context, photographerID uuid.UUID, weekday string) ([]string, error)
	ReplaceAvailability(ctx context.Context, photographerID uuid.UUID, availability []AvailabilityEntry) error
	GetAverageRating(ctx context.Context, photographerID uuid.UUID) (float64, error)
}

// Service handles photographer catalogue and availability logic.
type Service struct {
	repo ProfileStore
}

// NewService creates the photographer service.
func NewService(repo ProfileStore) *Service {
	return &Service{repo: repo}
}

// ListApproved returns approved photographers with their average ratings.
func (s *Service) ListApproved(ctx context.Context) ([]*Response, error) {
	rows, err := s.repo.ListByStatus(ctx, StatusApproved)
	if err != nil {
		return nil, err
	}

	result := make([]*Response, 0, len(rows))
	for i := range rows {
		resp := rows[i].ToResponse()
		resp.AverageRating, _ = s.repo.GetAverageRating(ctx, rows[i].ID)
		result = append(result, resp)
	}
	return result, nil
}

// GetDetail returns one approved photographer with availability and rating.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*Response, error) {
	row, err := s.repo.GetWithUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Status != StatusApproved {
		return nil, ErrProfileNotFound
	}

	resp := row.ToResponse()
	resp.AverageRating, _ = s.repo.GetAverageRating(ctx, id)

	availability, err := s.repo.GetAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Availability = availability
	return resp, nil
}

// ResolveOfferableSlots returns the photographer's declared slots for the
// weekday of date. A weekday with no declared slots yields an empty list,
// meaning the photographer is unavailable that day. Slots already taken are
// not filtered here; the exclusivity check happens inside the booking
// transaction.
func (s *Service) ResolveOfferableSlots(ctx context.Context, photographerID uuid.UUID, date string) ([]string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	profile, err := s.repo.GetByID(ctx, photographerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	slots, err := s.repo.SlotsForWeekday(ctx, photographerID, day.Weekday().String())
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// UpdateAvailability replaces the caller's declared weekly availability.
func (s *Service) UpdateAvailability(ctx context.Context, userID uuid.UUID, availability []AvailabilityEntry) (*Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.repo.ReplaceAvailability(ctx, profile.ID, availability); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateDetails updates the caller's specialization, experience and fee.
func (s *Service) UpdateDetails(ctx context.Context, userID uuid.UUID, specialization string, experienceYears int, fee float64) (*Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if specialization != "" {
		profile.Specialization = specialization
	}
	if experienceYears > 0 {
		profile.ExperienceYears = experienceYears
	}
	if fee > 0 {
		profile.FeePerSession = fee
	}

	if err := s.repo.UpdateDetails(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
