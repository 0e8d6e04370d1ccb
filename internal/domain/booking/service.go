package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/payment"
	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/pkg/period"
	"github.com/snaphire/snaphire-api/internal/pkg/stripe"
)

// ProfileStore is the photographer lookup surface the coordinator needs.
type ProfileStore interface {
	GetWithUser(ctx context.Context, id uuid.UUID) (*photographer.ProfileWithUser, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*photographer.Profile, error)
	SlotsForWeekday(ctx context.Context, photographerID uuid.UUID, weekday string) ([]string, error)
}

// AccountStore is the account lookup surface the coordinator needs.
type AccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// AppointmentStore is the appointment persistence surface.
type AppointmentStore interface {
	FindActiveSlot(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (*Appointment, error)
	CreateProvisional(ctx context.Context, a *Appointment) error
	ConfirmPaid(ctx context.Context, appointmentID uuid.UUID, p *payment.Payment) error
	CancelProvisional(ctx context.Context, appointmentID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]WithParticipants, error)
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID, start, end *time.Time) ([]WithParticipants, error)
}

// Gateway captures card charges.
type Gateway interface {
	Charge(ctx context.Context, amount float64, currency, paymentMethod, idempotencyKey string) (*stripe.PaymentIntent, error)
}

// Mailer queues transactional mail off the request path.
type Mailer interface {
	Queue(to, toName, subject, templateName string, data interface{})
}

// PaymentStore reads back payment records for composite views.
type PaymentStore interface {
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*payment.Payment, error)
}

// Service coordinates the booking transaction and appointment lifecycle.
type Service struct {
	repo     AppointmentStore
	profiles ProfileStore
	users    AccountStore
	payments PaymentStore
	gateway  Gateway
	locks    SlotLocker
	mailer   Mailer
}

// NewService creates the booking service.
func NewService(repo AppointmentStore, profiles ProfileStore, users AccountStore, payments PaymentStore, gateway Gateway, locks SlotLocker, mailer Mailer) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		users:    users,
		payments: payments,
		gateway:  gateway,
		locks:    locks,
		mailer:   mailer,
	}
}

// BookRequest carries the booking inputs.
type BookRequest struct {
	PhotographerID  uuid.UUID
	ClientID        uuid.UUID
	Date            string
	TimeSlot        string
	PaymentMethodID string
}

// BookResult is the outcome of a successful booking.
type BookResult struct {
	Appointment *Appointment
	Payment     *payment.Payment
}

// Book performs the end-to-end booking transaction:
// slot validation, exclusivity check, charge, persistence, notification.
//
// A provisional appointment is written before the charge so a captured
// payment always has a corresponding record; a declined charge cancels the
// provisional row and frees the slot. A Redis lock keyed by
// (photographer, date, slot) serialises concurrent attempts, and the
// partial unique index on appointments closes the window when the lock is
// unavailable.
func (s *Service) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	if req.Date == "" || req.TimeSlot == "" || req.PaymentMethodID == "" {
		return nil, ErrInvalidRequest
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidRequest
	}

	profile, err := s.profiles.GetWithUser(ctx, req.PhotographerID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Status != photographer.StatusApproved {
		return nil, ErrPhotographerMissing
	}

	client, err := s.users.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrInvalidRequest
	}

	offered, err := s.profiles.SlotsForWeekday(ctx, req.PhotographerID, date.Weekday().String())
	if err != nil {
		return nil, err
	}
	if !containsSlot(offered, req.TimeSlot) {
		return nil, ErrSlotNotOffered
	}

	acquired, err := s.locks.Acquire(ctx, req.PhotographerID, date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSlotAlreadyBooked
	}
	defer s.locks.Release(ctx, req.PhotographerID, date, req.TimeSlot)

	existing, err := s.repo.FindActiveSlot(ctx, req.PhotographerID, date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	now := time.Now()
	appointment := &Appointment{
		ID:             uuid.New(),
		PhotographerID: req.PhotographerID,
		ClientID:       req.ClientID,
		Date:           date,
		TimeSlot:       req.TimeSlot,
		Status:         StatusPending,
		PaymentStatus:  PaymentPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateProvisional(ctx, appointment); err != nil {
		return nil, err
	}

	// The appointment id doubles as the gateway idempotency key.
	intent, err := s.gateway.Charge(ctx, profile.FeePerSession, "usd", req.PaymentMethodID, appointment.ID.String())
	if err != nil {
		if cancelErr := s.repo.CancelProvisional(ctx, appointment.ID); cancelErr != nil {
			log.Error().Err(cancelErr).
				Str("appointment_id", appointment.ID.String()).
				Msg("Failed to release provisional appointment after declined charge")
		}
		if errors.Is(err, stripe.ErrCardDeclined) {
			return nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
		}
		return nil, err
	}

	pay := &payment.Payment{
		ID:             uuid.New(),
		AppointmentID:  appointment.ID,
		ClientID:       req.ClientID,
		PhotographerID: req.PhotographerID,
		Amount:         profile.FeePerSession,
		TransactionID:  intent.ID,
		PaymentMethod:  req.PaymentMethodID,
		Status:         payment.StatusSuccess,
		CreatedAt:      now,
	}
	if err := s.repo.ConfirmPaid(ctx, appointment.ID, pay); err != nil {
		// Funds are captured; keep loud evidence until the record is repaired.
		log.Error().Err(err).
			Str("appointment_id", appointment.ID.String()).
			Str("transaction_id", intent.ID).
			Msg("Charge captured but payment record not persisted")
		return nil, err
	}
	appointment.PaymentStatus = PaymentPaid

	s.mailer.Queue(client.Email, client.Name, "Booking Confirmation & Invoice", "booking_confirmation", map[string]interface{}{
		"ClientName":       client.Name,
		"PhotographerName": profile.Name,
		"Date":             req.Date,
		"TimeSlot":         req.TimeSlot,
		"Amount":           profile.FeePerSession,
		"TransactionID":    intent.ID,
	})

	return &BookResult{Appointment: appointment, Payment: pay}, nil
}

// Details assembles the composite appointment view: both parties plus the
// payment record. Only the participants and admins may read it.
type Details struct {
	Appointment  *Response              `json:"appointment"`
	Photographer map[string]interface{} `json:"photographer"`
	Client       map[string]interface{} `json:"client"`
	Payment      *payment.Response      `json:"payment,omitempty"`
}

// GetDetails returns the composite view for one appointment.
func (s *Service) GetDetails(ctx context.Context, appointmentID, requesterID uuid.UUID, requesterRole string) (*Details, error) {
	appointment, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentMissing
	}

	profile, err := s.profiles.GetWithUser(ctx, appointment.PhotographerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPhotographerMissing
	}

	if requesterRole != string(user.RoleAdmin) &&
		requesterID != appointment.ClientID &&
		requesterID != profile.UserID {
		return nil, user.ErrUserNotFound
	}

	client, err := s.users.GetByID(ctx, appointment.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, user.ErrUserNotFound
	}

	details := &Details{
		Appointment: appointment.ToResponse(),
		Photographer: map[string]interface{}{
			"name":             profile.Name,
			"email":            profile.Email,
			"contact":          profile.Contact,
			"specialization":   profile.Specialization,
			"experience_years": profile.ExperienceYears,
			"fee_per_session":  profile.FeePerSession,
		},
		Client: map[string]interface{}{
			"name":    client.Name,
			"email":   client.Email,
			"contact": client.Contact,
		},
	}

	if pay, err := s.payments.GetByAppointmentID(ctx, appointmentID); err == nil && pay != nil {
		details.Payment = pay.ToResponse()
	}

	return details, nil
}

// CancelByClient cancels a client's own appointment. Idempotent: cancelling
// an already-cancelled appointment returns it unchanged.
func (s *Service) CancelByClient(ctx context.Context, clientID, appointmentID uuid.UUID) (*Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.ClientID != clientID {
		return nil, ErrAppointmentMissing
	}

	if appointment.Status == StatusCancelled {
		return appointment, nil
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, StatusCancelled); err != nil {
		return nil, err
	}
	appointment.Status = StatusCancelled

	s.notifyStatusChange(ctx, appointment)
	return appointment, nil
}

// UpdateStatusByPhotographer applies pending→completed or pending→cancelled
// for the photographer owning the appointment. Terminal states are terminal.
func (s *Service) UpdateStatusByPhotographer(ctx context.Context, photographerUserID, appointmentID uuid.UUID, status string) (*Appointment, error) {
	if status != string(StatusCompleted) && status != string(StatusCancelled) {
		return nil, ErrInvalidStatus
	}

	profile, err := s.profiles.GetByUserID(ctx, photographerUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPhotographerMissing
	}

	appointment, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.PhotographerID != profile.ID {
		return nil, ErrAppointmentMissing
	}

	if appointment.IsFinal() {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, Status(status)); err != nil {
		return nil, err
	}
	appointment.Status = Status(status)

	s.notifyStatusChange(ctx, appointment)
	return appointment, nil
}

// ListForClient returns a client's appointments with photographer names.
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]WithParticipants, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// ListForPhotographer returns the caller's appointments for the requested
// window plus aggregated graph data.
func (s *Service) ListForPhotographer(ctx context.Context, photographerUserID uuid.UUID, window, startDate, endDate string) ([]WithParticipants, *AppointmentsReport, error) {
	profile, err := s.profiles.GetByUserID(ctx, photographerUserID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrPhotographerMissing
	}

	start, end, err := period.Range(window, startDate, endDate, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	appointments, err := s.repo.ListByPhotographer(ctx, profile.ID, start, end)
	if err != nil {
		return nil, nil, err
	}

	return appointments, BuildAppointmentsReport(appointments), nil
}

func (s *Service) notifyStatusChange(ctx context.Context, appointment *Appointment) {
	client, err := s.users.GetByID(ctx, appointment.ClientID)
	if err != nil || client == nil {
		log.Warn().Str("appointment_id", appointment.ID.String()).Msg("Client not found for status notification")
		return
	}

	photographerName := ""
	if profile, err := s.profiles.GetWithUser(ctx, appointment.PhotographerID); err == nil && profile != nil {
		photographerName = profile.Name
	}

	s.mailer.Queue(client.Email, client.Name, "Appointment Update", "appointment_status", map[string]interface{}{
		"ClientName":       client.Name,
		"PhotographerName": photographerName,
		"Date":             appointment.Date.Format("2006-01-02"),
		"TimeSlot":         appointment.TimeSlot,
		"Status":           string(appointment.Status),
	})
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
