package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/booking"
	"github.com/snaphire/snaphire-api/internal/domain/payment"
	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
)

// Stats is the dashboard totals payload.
type Stats struct {
	TotalUsers          int     `json:"total_users"`
	TotalPhotographers  int     `json:"total_photographers"`
	TotalAppointments   int     `json:"total_appointments"`
	PendingAppointments int     `json:"pending_appointments"`
	TotalPayments       int     `json:"total_payments"`
	TotalRevenue        float64 `json:"total_revenue"`
}

// UserLister reads all accounts.
type UserLister interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// ProfileAdmin is the photographer surface for moderation.
type ProfileAdmin interface {
	ListAll(ctx context.Context) ([]photographer.ProfileWithUser, error)
	GetWithUser(ctx context.Context, id uuid.UUID) (*photographer.ProfileWithUser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status photographer.Status) error
}

// AppointmentLister reads all appointments.
type AppointmentLister interface {
	ListAll(ctx context.Context) ([]booking.WithParticipants, error)
}

// PaymentLister reads all payment records.
type PaymentLister interface {
	ListAll(ctx context.Context) ([]payment.WithClient, error)
}

// Mailer queues transactional mail.
type Mailer interface {
	Queue(to, toName, subject, templateName string, data interface{})
}

// Service implements the admin console use cases.
type Service struct {
	users        UserLister
	profiles     ProfileAdmin
	appointments AppointmentLister
	payments     PaymentLister
	mailer       Mailer
}

// NewService creates the admin service.
func NewService(users UserLister, profiles ProfileAdmin, appointments AppointmentLister, payments PaymentLister, mailer Mailer) *Service {
	return &Service{
		users:        users,
		profiles:     profiles,
		appointments: appointments,
		payments:     payments,
		mailer:       mailer,
	}
}

// DashboardStats aggregates platform-wide totals.
func (s *Service) DashboardStats(ctx context.Context) (*Stats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalUsers:         len(users),
		TotalPhotographers: len(profiles),
		TotalAppointments:  len(appointments),
		TotalPayments:      len(payments),
	}
	for i := range appointments {
		if appointments[i].Status == booking.StatusPending {
			stats.PendingAppointments++
		}
	}
	for i := range payments {
		stats.TotalRevenue += payments[i].Amount
	}
	return stats, nil
}

// ListUsers returns all accounts.
func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

// ListPhotographers returns all profiles regardless of approval status.
func (s *Service) ListPhotographers(ctx context.Context) ([]photographer.ProfileWithUser, error) {
	return s.profiles.ListAll(ctx)
}

// ListAppointments returns all appointments with participant info.
func (s *Service) ListAppointments(ctx context.Context) ([]booking.WithParticipants, error) {
	return s.appointments.ListAll(ctx)
}

// ListPayments returns all payment records with client info.
func (s *Service) ListPayments(ctx context.Context) ([]payment.WithClient, error) {
	return s.payments.ListAll(ctx)
}

// DecideProfile approves or rejects a photographer profile and notifies
// the photographer.
func (s *Service) DecideProfile(ctx context.Context, profileID uuid.UUID, decision string) (*photographer.ProfileWithUser, error) {
	if !photographer.IsValidDecision(decision) {
		return nil, photographer.ErrInvalidDecision
	}

	profile, err := s.profiles.GetWithUser(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, photographer.ErrProfileNotFound
	}

	if err := s.profiles.UpdateStatus(ctx, profileID, photographer.Status(decision)); err != nil {
		return nil, err
	}
	profile.Status = photographer.Status(decision)

	s.mailer.Queue(profile.Email, profile.Name, "Profile Review Update", "profile_status", map[string]interface{}{
		"Name":   profile.Name,
		"Status": decision,
	})

	log.Info().
		Str("photographer_id", profileID.String()).
		Str("decision", decision).
		Msg("Photographer profile decision applied")

	return profile, nil
}
