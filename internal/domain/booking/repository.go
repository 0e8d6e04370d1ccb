package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/snaphire/snaphire-api/internal/domain/payment"
)

const sqlStateUniqueViolation = "23505"

// Repository handles appointment database operations.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new booking repository.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// FindActiveSlot returns the non-cancelled appointment holding the
// (photographer, date, slot) tuple, or nil.
func (r *Repository) FindActiveSlot(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (*Appointment, error) {
	query := `
		SELECT * FROM appointments
		WHERE photographer_id = $1 AND date = $2 AND time_slot = $3 AND status <> 'cancelled'
	`
	var a Appointment
	err := r.db.GetContext(ctx, &a, query, photographerID, date, timeSlot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

// CreateProvisional inserts an appointment in pending/payment-pending state.
// A partial unique index on (photographer_id, date, time_slot) for
// non-cancelled rows backs the slot-exclusivity invariant; a conflict maps
// to ErrSlotAlreadyBooked.
func (r *Repository) CreateProvisional(ctx context.Context, a *Appointment) error {
	query := `
		INSERT INTO appointments (id, photographer_id, client_id, date, time_slot, status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.PhotographerID,
		a.ClientID,
		a.Date,
		a.TimeSlot,
		a.Status,
		a.PaymentStatus,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isSlotConflict(err) {
		return ErrSlotAlreadyBooked
	}
	return err
}

// ConfirmPaid flips the appointment to paid and records the payment in one
// transaction, so a paid appointment always has its payment record.
func (r *Repository) ConfirmPaid(ctx context.Context, appointmentID uuid.UUID, p *payment.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE appointments SET payment_status = 'paid', updated_at = NOW() WHERE id = $1`,
		appointmentID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO payments (id, appointment_id, client_id, photographer_id, amount, transaction_id, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID,
		p.AppointmentID,
		p.ClientID,
		p.PhotographerID,
		p.Amount,
		p.TransactionID,
		p.PaymentMethod,
		p.Status,
		p.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// CancelProvisional releases a provisional appointment after a declined
// charge. The partial index ignores cancelled rows, freeing the slot.
func (r *Repository) CancelProvisional(ctx context.Context, appointmentID uuid.UUID) error {
	query := `UPDATE appointments SET status = 'cancelled', updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, appointmentID)
	return err
}

// GetByID returns an appointment by ID, or nil.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var a Appointment
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

// UpdateStatus persists a lifecycle transition.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

// ListByClient returns a client's appointments with photographer names,
// soonest first.
func (r *Repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]WithParticipants, error) {
	query := `
		SELECT a.*, pu.name AS photographer_name
		FROM appointments a
		JOIN photographer_profiles pp ON pp.id = a.photographer_id
		JOIN users pu ON pu.id = pp.user_id
		WHERE a.client_id = $1
		ORDER BY a.date ASC
	`
	var rows []WithParticipants
	err := r.db.SelectContext(ctx, &rows, query, clientID)
	return rows, err
}

// ListByPhotographer returns a photographer's appointments within an
// optional date range, joined with client info and captured amounts.
func (r *Repository) ListByPhotographer(ctx context.Context, photographerID uuid.UUID, start, end *time.Time) ([]WithParticipants, error) {
	query := `
		SELECT a.*, cu.name AS client_name, cu.email AS client_email, cu.contact AS client_contact, p.amount
		FROM appointments a
		JOIN users cu ON cu.id = a.client_id
		LEFT JOIN payments p ON p.appointment_id = a.id
		WHERE a.photographer_id = $1
		  AND ($2::date IS NULL OR a.date >= $2)
		  AND ($3::date IS NULL OR a.date < $3)
		ORDER BY a.date ASC
	`
	var rows []WithParticipants
	err := r.db.SelectContext(ctx, &rows, query, photographerID, start, end)
	return rows, err
}

// ListAll returns every appointment with both parties joined, for admin views.
func (r *Repository) ListAll(ctx context.Context) ([]WithParticipants, error) {
	query := `
		SELECT a.*, pu.name AS photographer_name, cu.name AS client_name, cu.email AS client_email, cu.contact AS client_contact
		FROM appointments a
		JOIN photographer_profiles pp ON pp.id = a.photographer_id
		JOIN users pu ON pu.id = pp.user_id
		JOIN users cu ON cu.id = a.client_id
		ORDER BY a.created_at DESC
	`
	var rows []WithParticipants
	err := r.db.SelectContext(ctx, &rows, query)
	return rows, err
}

func isSlotConflict(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == sqlStateUniqueViolation &&
		pqErr.Constraint == "appointments_active_slot_idx"
}
