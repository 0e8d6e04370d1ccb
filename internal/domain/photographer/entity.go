package photographer

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents the approval state of a photographer profile.
// Only approved profiles are listed and bookable.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValidDecision checks a status value used by the admin approval endpoint.
func IsValidDecision(s string) bool {
	return s == string(StatusApproved) || s == string(StatusRejected)
}

// Profile represents photographer-specific attributes attached to an account.
type Profile struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Specialization  string    `db:"specialization"`
	ExperienceYears int       `db:"experience_years"`
	FeePerSession   float64   `db:"fee_per_session"`
	Status          Status    `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProfileWithUser joins the profile with its account for listings.
type ProfileWithUser struct {
	Profile
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Contact      string         `db:"contact"`
	ProfileImage sql.NullString `db:"profile_image"`
}

// AvailabilityEntry is one weekday's declared time slots.
type AvailabilityEntry struct {
	Day       string   `json:"day" validate:"required,weekday"`
	TimeSlots []string `json:"time_slots" validate:"required,min=1,dive,required"`
}

// Response is the public API shape of a photographer.
type Response struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Contact         string              `json:"contact"`
	ProfileImage    string              `json:"profile_image,omitempty"`
	Specialization  string              `json:"specialization"`
	ExperienceYears int                 `json:"experience_years"`
	FeePerSession   float64             `json:"fee_per_session"`
	Status          string              `json:"status"`
	AverageRating   float64             `json:"average_rating"`
	Availability    []AvailabilityEntry `json:"availability,omitempty"`
}

// ToResponse converts the joined row to its API shape.
func (p *ProfileWithUser) ToResponse() *Response {
	resp := &Response{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		Name:            p.Name,
		Email:           p.Email,
		Contact:         p.Contact,
		Specialization:  p.Specialization,
		ExperienceYears: p.ExperienceYears,
		FeePerSession:   p.FeePerSession,
		Status:          string(p.Status),
	}
	if p.ProfileImage.Valid {
		resp.ProfileImage = p.ProfileImage.String
	}
	return resp
}
