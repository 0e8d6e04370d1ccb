package review

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Review is a client's rating of a photographer.
type Review struct {
	ID             uuid.UUID `db:"id"`
	PhotographerID uuid.UUID `db:"photographer_id"`
	ClientID       uuid.UUID `db:"client_id"`
	Rating         int       `db:"rating"`
	Comment        string    `db:"comment"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Response is the API shape of a review.
type Response struct {
	ID             string `json:"id"`
	PhotographerID string `json:"photographer_id"`
	ClientID       string `json:"client_id"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	CreatedAt      string `json:"created_at"`
}

// ToResponse converts the entity to its API shape.
func (r *Review) ToResponse() *Response {
	return &Response{
		ID:             r.ID.String(),
		PhotographerID: r.PhotographerID.String(),
		ClientID:       r.ClientID.String(),
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

// WithReviewer joins a review with the reviewer's account info.
type WithReviewer struct {
	Review
	ReviewerName  string         `db:"reviewer_name"`
	ReviewerImage sql.NullString `db:"reviewer_image"`
}

// Summary aggregates a photographer's reviews.
type Summary struct {
	AverageRating float64        `json:"average_rating"`
	Count         int            `json:"count"`
	Distribution  map[string]int `json:"distribution"`
}
