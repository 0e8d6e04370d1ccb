package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository reads creation timestamps for report bucketing.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new report repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) createdAt(ctx context.Context, table string, start, end *time.Time) ([]time.Time, error) {
	query := fmt.Sprintf(`
		SELECT created_at FROM %s
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at`, table)

	times := []time.Time{}
	if err := r.db.SelectContext(ctx, &times, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to read %s timestamps: %w", table, err)
	}
	return times, nil
}

// AppointmentTimes returns appointment creation timestamps in the window.
func (r *Repository) AppointmentTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error) {
	return r.createdAt(ctx, "appointments", start, end)
}

// PaymentTimes returns payment creation timestamps in the window.
func (r *Repository) PaymentTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error) {
	return r.createdAt(ctx, "payments", start, end)
}

// ReviewTimes returns review creation timestamps in the window.
func (r *Repository) ReviewTimes(ctx context.Context, start, end *time.Time) ([]time.Time, error) {
	return r.createdAt(ctx, "reviews", start, end)
}
