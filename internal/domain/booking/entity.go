package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents appointment lifecycle state. Pending is the only
// non-terminal state; completed and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus tracks whether the charge for an appointment was captured.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Appointment represents one booked session.
type Appointment struct {
	ID             uuid.UUID     `db:"id"`
	PhotographerID uuid.UUID     `db:"photographer_id"`
	ClientID       uuid.UUID     `db:"client_id"`
	Date           time.Time     `db:"date"`
	TimeSlot       string        `db:"time_slot"`
	Status         Status        `db:"status"`
	PaymentStatus  PaymentStatus `db:"payment_status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsFinal reports whether the appointment reached a terminal state.
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// Response is the API shape of an appointment.
type Response struct {
	ID             string `json:"id"`
	PhotographerID string `json:"photographer_id"`
	ClientID       string `json:"client_id"`
	Date           string `json:"date"`
	TimeSlot       string `json:"time_slot"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`
	CreatedAt      string `json:"created_at"`
}

// ToResponse converts the entity to its API shape.
func (a *Appointment) ToResponse() *Response {
	return &Response{
		ID:             a.ID.String(),
		PhotographerID: a.PhotographerID.String(),
		ClientID:       a.ClientID.String(),
		Date:           a.Date.Format("2006-01-02"),
		TimeSlot:       a.TimeSlot,
		Status:         string(a.Status),
		PaymentStatus:  string(a.PaymentStatus),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

// WithParticipants joins an appointment with both parties' account info.
type WithParticipants struct {
	Appointment
	PhotographerName sql.NullString `db:"photographer_name"`
	ClientName       sql.NullString `db:"client_name"`
	ClientEmail      sql.NullString `db:"client_email"`
	ClientContact    sql.NullString `db:"client_contact"`
	Amount           sql.NullFloat64 `db:"amount"`
}
