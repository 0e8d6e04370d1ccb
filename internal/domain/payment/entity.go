package payment

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the outcome recorded for a captured charge.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Payment is the record kept for every captured charge, one per appointment.
type Payment struct {
	ID             uuid.UUID `db:"id"`
	AppointmentID  uuid.UUID `db:"appointment_id"`
	ClientID       uuid.UUID `db:"client_id"`
	PhotographerID uuid.UUID `db:"photographer_id"`
	Amount         float64   `db:"amount"`
	TransactionID  string    `db:"transaction_id"`
	PaymentMethod  string    `db:"payment_method"`
	Status         Status    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

// Response is the API shape of a payment record.
type Response struct {
	ID             string  `json:"id"`
	AppointmentID  string  `json:"appointment_id"`
	ClientID       string  `json:"client_id"`
	PhotographerID string  `json:"photographer_id"`
	Amount         float64 `json:"amount"`
	TransactionID  string  `json:"transaction_id"`
	PaymentMethod  string  `json:"payment_method"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// ToResponse converts the entity to its API shape.
func (p *Payment) ToResponse() *Response {
	return &Response{
		ID:             p.ID.String(),
		AppointmentID:  p.AppointmentID.String(),
		ClientID:       p.ClientID.String(),
		PhotographerID: p.PhotographerID.String(),
		Amount:         p.Amount,
		TransactionID:  p.TransactionID,
		PaymentMethod:  p.PaymentMethod,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

// WithClient joins a payment with the paying client's account info.
type WithClient struct {
	Payment
	ClientName  string `db:"client_name"`
	ClientEmail string `db:"client_email"`
}
