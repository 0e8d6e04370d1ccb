package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles payment record database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new payment repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetByAppointmentID returns the payment linked to an appointment, or nil.
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*Payment, error) {
	query := `SELECT * FROM payments WHERE appointment_id = $1`
	var p Payment
	err := r.db.GetContext(ctx, &p, query, appointmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

// ListByPhotographer returns a photographer's payments within an optional
// date range, joined with client info, newest first.
func (r *Repository) ListByPhotographer(ctx context.Context, photographerID uuid.UUID, start, end *time.Time) ([]WithClient, error) {
	query := `
		SELECT p.*, u.name AS client_name, u.email AS client_email
		FROM payments p
		JOIN users u ON u.id = p.client_id
		WHERE p.photographer_id = $1
		  AND ($2::timestamptz IS NULL OR p.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR p.created_at < $3)
		ORDER BY p.created_at DESC
	`
	var rows []WithClient
	err := r.db.SelectContext(ctx, &rows, query, photographerID, start, end)
	return rows, err
}

// ListAll returns every payment record, for admin views.
func (r *Repository) ListAll(ctx context.Context) ([]WithClient, error) {
	query := `
		SELECT p.*, u.name AS client_name, u.email AS client_email
		FROM payments p
		JOIN users u ON u.id = p.client_id
		ORDER BY p.created_at DESC
	`
	var rows []WithClient
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}
