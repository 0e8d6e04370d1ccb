package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles review database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new review repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	query := `
		INSERT INTO reviews (id, photographer_id, client_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.PhotographerID, review.ClientID,
		review.Rating, review.Comment, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID returns a review by id, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	query := `SELECT * FROM reviews WHERE id = $1`

	var review Review
	err := r.db.GetContext(ctx, &review, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// ListByPhotographer returns a photographer's reviews with reviewer info,
// newest first.
func (r *Repository) ListByPhotographer(ctx context.Context, photographerID uuid.UUID) ([]WithReviewer, error) {
	query := `
		SELECT r.*, u.name AS reviewer_name, u.profile_image AS reviewer_image
		FROM reviews r
		JOIN users u ON u.id = r.client_id
		WHERE r.photographer_id = $1
		ORDER BY r.created_at DESC`

	reviews := []WithReviewer{}
	if err := r.db.SelectContext(ctx, &reviews, query, photographerID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// RatingCounts returns the number of reviews per rating value.
func (r *Repository) RatingCounts(ctx context.Context, photographerID uuid.UUID) (map[int]int, error) {
	query := `
		SELECT rating, COUNT(*) AS count
		FROM reviews
		WHERE photographer_id = $1
		GROUP BY rating`

	rows := []struct {
		Rating int `db:"rating"`
		Count  int `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, photographerID); err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Rating] = row.Count
	}
	return counts, nil
}

// Update persists a review's rating and comment.
func (r *Repository) Update(ctx context.Context, review *Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, review.ID, review.Rating, review.Comment); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

// Delete removes a review.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

