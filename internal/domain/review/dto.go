package review

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	PhotographerID string `json:"photographer_id" validate:"required,uuid"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Comment        string `json:"comment" validate:"max=2000"`
}

// UpdateReviewRequest is the payload for editing a review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}
