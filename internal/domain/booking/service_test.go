package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/snaphire/snaphire-api/internal/domain/payment"
	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/pkg/stripe"
)

type fakeProfiles struct {
	profile *photographer.ProfileWithUser
	slots   map[string][]string
}

func (f *fakeProfiles) GetWithUser(_ context.Context, id uuid.UUID) (*photographer.ProfileWithUser, error) {
	if f.profile != nil && f.profile.ID == id {
		return f.profile, nil
	}
	return nil, nil
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID uuid.UUID) (*photographer.Profile, error) {
	if f.profile != nil && f.profile.UserID == userID {
		return &f.profile.Profile, nil
	}
	return nil, nil
}

func (f *fakeProfiles) SlotsForWeekday(_ context.Context, _ uuid.UUID, weekday string) ([]string, error) {
	return f.slots[weekday], nil
}

type fakeAccounts struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeAccounts) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	return f.users[id], nil
}

type fakeAppointments struct {
	byID        map[uuid.UUID]*Appointment
	payments    map[uuid.UUID]*payment.Payment
	confirmErr  error
	activeSlots map[string]*Appointment
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{
		byID:        make(map[uuid.UUID]*Appointment),
		payments:    make(map[uuid.UUID]*payment.Payment),
		activeSlots: make(map[string]*Appointment),
	}
}

func slotKey(photographerID uuid.UUID, date time.Time, slot string) string {
	return photographerID.String() + "|" + date.Format("2006-01-02") + "|" + slot
}

func (f *fakeAppointments) FindActiveSlot(_ context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (*Appointment, error) {
	a := f.activeSlots[slotKey(photographerID, date, timeSlot)]
	if a != nil && a.Status != StatusCancelled {
		return a, nil
	}
	return nil, nil
}

func (f *fakeAppointments) CreateProvisional(_ context.Context, a *Appointment) error {
	key := slotKey(a.PhotographerID, a.Date, a.TimeSlot)
	if existing := f.activeSlots[key]; existing != nil && existing.Status != StatusCancelled {
		return ErrSlotAlreadyBooked
	}
	f.byID[a.ID] = a
	f.activeSlots[key] = a
	return nil
}

func (f *fakeAppointments) ConfirmPaid(_ context.Context, appointmentID uuid.UUID, p *payment.Payment) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	a, ok := f.byID[appointmentID]
	if !ok {
		return ErrAppointmentMissing
	}
	a.PaymentStatus = PaymentPaid
	f.payments[appointmentID] = p
	return nil
}

func (f *fakeAppointments) CancelProvisional(_ context.Context, appointmentID uuid.UUID) error {
	a, ok := f.byID[appointmentID]
	if !ok {
		return ErrAppointmentMissing
	}
	a.Status = StatusCancelled
	return nil
}

func (f *fakeAppointments) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	return f.byID[id], nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	a, ok := f.byID[id]
	if !ok {
		return ErrAppointmentMissing
	}
	a.Status = status
	return nil
}

func (f *fakeAppointments) ListByClient(_ context.Context, clientID uuid.UUID) ([]WithParticipants, error) {
	var out []WithParticipants
	for _, a := range f.byID {
		if a.ClientID == clientID {
			out = append(out, WithParticipants{Appointment: *a})
		}
	}
	return out, nil
}

func (f *fakeAppointments) ListByPhotographer(_ context.Context, photographerID uuid.UUID, _, _ *time.Time) ([]WithParticipants, error) {
	var out []WithParticipants
	for _, a := range f.byID {
		if a.PhotographerID == photographerID {
			out = append(out, WithParticipants{Appointment: *a})
		}
	}
	return out, nil
}

type fakePayments struct {
	store *fakeAppointments
}

func (f *fakePayments) GetByAppointmentID(_ context.Context, appointmentID uuid.UUID) (*payment.Payment, error) {
	return f.store.payments[appointmentID], nil
}

type fakeGateway struct {
	err     error
	charges int
	lastKey string
	amount  float64
}

func (f *fakeGateway) Charge(_ context.Context, amount float64, _, _ string, idempotencyKey string) (*stripe.PaymentIntent, error) {
	f.charges++
	f.lastKey = idempotencyKey
	f.amount = amount
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_test_123", Status: "succeeded"}, nil
}

type fakeLocker struct {
	held map[string]bool
}

func (f *fakeLocker) Acquire(_ context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	key := slotKey(photographerID, date, timeSlot)
	if f.held == nil {
		f.held = make(map[string]bool)
	}
	if f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) {
	delete(f.held, slotKey(photographerID, date, timeSlot))
}

type fakeMailer struct {
	queued []string
}

func (f *fakeMailer) Queue(_, _, _, templateName string, _ interface{}) {
	f.queued = append(f.queued, templateName)
}

type bookingFixture struct {
	service      *Service
	repo         *fakeAppointments
	gateway      *fakeGateway
	mailer       *fakeMailer
	profile      *photographer.ProfileWithUser
	client       *user.User
	clientID     uuid.UUID
	photographer uuid.UUID
}

func newBookingFixture() *bookingFixture {
	profileID := uuid.New()
	photographerUserID := uuid.New()
	clientID := uuid.New()

	profile := &photographer.ProfileWithUser{
		Profile: photographer.Profile{
			ID:            profileID,
			UserID:        photographerUserID,
			FeePerSession: 150,
			Status:        photographer.StatusApproved,
		},
		Name:  "Alex Frame",
		Email: "alex@example.com",
	}

	client := &user.User{
		ID:    clientID,
		Name:  "Dana Client",
		Email: "dana@example.com",
		Role:  user.RoleClient,
	}

	repo := newFakeAppointments()
	gateway := &fakeGateway{}
	mailer := &fakeMailer{}

	profiles := &fakeProfiles{
		profile: profile,
		slots: map[string][]string{
			// 2026-09-07 is a Monday
			"Monday": {"10:00-11:00", "14:00-15:00"},
		},
	}
	accounts := &fakeAccounts{users: map[uuid.UUID]*user.User{
		clientID:           client,
		photographerUserID: {ID: photographerUserID, Name: "Alex Frame", Email: "alex@example.com", Role: user.RolePhotographer},
	}}

	svc := NewService(repo, profiles, accounts, &fakePayments{store: repo}, gateway, &fakeLocker{}, mailer)

	return &bookingFixture{
		service:      svc,
		repo:         repo,
		gateway:      gateway,
		mailer:       mailer,
		profile:      profile,
		client:       client,
		clientID:     clientID,
		photographer: profileID,
	}
}

func validRequest(f *bookingFixture) BookRequest {
	return BookRequest{
		PhotographerID:  f.photographer,
		ClientID:        f.clientID,
		Date:            "2026-09-07",
		TimeSlot:        "10:00-11:00",
		PaymentMethodID: "pm_card_visa",
	}
}

func TestBookSuccess(t *testing.T) {
	f := newBookingFixture()

	result, err := f.service.Book(context.Background(), validRequest(f))
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if result.Appointment.Status != StatusPending {
		t.Errorf("appointment status = %s, want pending", result.Appointment.Status)
	}
	if result.Appointment.PaymentStatus != PaymentPaid {
		t.Errorf("payment status = %s, want paid", result.Appointment.PaymentStatus)
	}
	if result.Payment.Amount != f.profile.FeePerSession {
		t.Errorf("payment amount = %v, want %v", result.Payment.Amount, f.profile.FeePerSession)
	}
	if result.Payment.TransactionID != "pi_test_123" {
		t.Errorf("transaction id = %s", result.Payment.TransactionID)
	}
	if f.gateway.lastKey != result.Appointment.ID.String() {
		t.Errorf("idempotency key = %s, want appointment id %s", f.gateway.lastKey, result.Appointment.ID)
	}
	if len(f.mailer.queued) != 1 || f.mailer.queued[0] != "booking_confirmation" {
		t.Errorf("queued mail = %v, want one booking_confirmation", f.mailer.queued)
	}
}

func TestBookSlotNotOffered(t *testing.T) {
	f := newBookingFixture()

	req := validRequest(f)
	req.TimeSlot = "23:00-23:30"

	_, err := f.service.Book(context.Background(), req)
	if !errors.Is(err, ErrSlotNotOffered) {
		t.Fatalf("Book() error = %v, want ErrSlotNotOffered", err)
	}
	if f.gateway.charges != 0 {
		t.Error("gateway charged despite rejected slot")
	}
	if len(f.repo.byID) != 0 {
		t.Error("appointment record created despite rejected slot")
	}
}

func TestBookUndeclaredWeekday(t *testing.T) {
	f := newBookingFixture()

	req := validRequest(f)
	req.Date = "2026-09-08" // Tuesday, no declared slots

	_, err := f.service.Book(context.Background(), req)
	if !errors.Is(err, ErrSlotNotOffered) {
		t.Fatalf("Book() error = %v, want ErrSlotNotOffered", err)
	}
}

func TestBookSlotAlreadyBooked(t *testing.T) {
	f := newBookingFixture()

	if _, err := f.service.Book(context.Background(), validRequest(f)); err != nil {
		t.Fatalf("first Book() error = %v", err)
	}

	otherClient := uuid.New()
	f.service.users.(*fakeAccounts).users[otherClient] = &user.User{ID: otherClient, Name: "Second", Email: "second@example.com"}

	req := validRequest(f)
	req.ClientID = otherClient

	_, err := f.service.Book(context.Background(), req)
	if !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("second Book() error = %v, want ErrSlotAlreadyBooked", err)
	}
	if f.gateway.charges != 1 {
		t.Errorf("gateway charges = %d, want 1", f.gateway.charges)
	}
}

func TestBookPaymentDeclinedFreesSlot(t *testing.T) {
	f := newBookingFixture()
	f.gateway.err = stripe.ErrCardDeclined

	_, err := f.service.Book(context.Background(), validRequest(f))
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("Book() error = %v, want ErrPaymentDeclined", err)
	}

	// The provisional appointment must be cancelled so the slot frees up.
	for _, a := range f.repo.byID {
		if a.Status != StatusCancelled {
			t.Errorf("provisional appointment status = %s, want cancelled", a.Status)
		}
	}
	if len(f.repo.payments) != 0 {
		t.Error("payment record written despite declined charge")
	}

	// A retry with a working card succeeds on the same slot.
	f.gateway.err = nil
	if _, err := f.service.Book(context.Background(), validRequest(f)); err != nil {
		t.Fatalf("retry Book() error = %v", err)
	}
}

func TestBookUnapprovedPhotographer(t *testing.T) {
	f := newBookingFixture()
	f.profile.Status = photographer.StatusPending

	_, err := f.service.Book(context.Background(), validRequest(f))
	if !errors.Is(err, ErrPhotographerMissing) {
		t.Fatalf("Book() error = %v, want ErrPhotographerMissing", err)
	}
}

func TestBookUnknownPhotographer(t *testing.T) {
	f := newBookingFixture()

	req := validRequest(f)
	req.PhotographerID = uuid.New()

	_, err := f.service.Book(context.Background(), req)
	if !errors.Is(err, ErrPhotographerMissing) {
		t.Fatalf("Book() error = %v, want ErrPhotographerMissing", err)
	}
}

func TestCancelByClientIdempotent(t *testing.T) {
	f := newBookingFixture()

	result, err := f.service.Book(context.Background(), validRequest(f))
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	first, err := f.service.CancelByClient(context.Background(), f.clientID, result.Appointment.ID)
	if err != nil {
		t.Fatalf("first cancel error = %v", err)
	}
	if first.Status != StatusCancelled {
		t.Errorf("status after cancel = %s, want cancelled", first.Status)
	}

	second, err := f.service.CancelByClient(context.Background(), f.clientID, result.Appointment.ID)
	if err != nil {
		t.Fatalf("second cancel error = %v", err)
	}
	if second.Status != StatusCancelled {
		t.Errorf("status after repeat cancel = %s", second.Status)
	}
}

func TestCancelByClientForeignAppointment(t *testing.T) {
	f := newBookingFixture()

	result, err := f.service.Book(context.Background(), validRequest(f))
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	_, err = f.service.CancelByClient(context.Background(), uuid.New(), result.Appointment.ID)
	if !errors.Is(err, ErrAppointmentMissing) {
		t.Fatalf("cancel error = %v, want ErrAppointmentMissing", err)
	}
}

func TestUpdateStatusByPhotographerTransitions(t *testing.T) {
	f := newBookingFixture()

	result, err := f.service.Book(context.Background(), validRequest(f))
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	photographerUserID := f.profile.UserID

	updated, err := f.service.UpdateStatusByPhotographer(context.Background(), photographerUserID, result.Appointment.ID, "completed")
	if err != nil {
		t.Fatalf("UpdateStatus error = %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", updated.Status)
	}

	// Completed is terminal.
	_, err = f.service.UpdateStatusByPhotographer(context.Background(), photographerUserID, result.Appointment.ID, "cancelled")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("transition from completed error = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.UpdateStatusByPhotographer(context.Background(), f.profile.UserID, uuid.New(), "pending")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("error = %v, want ErrInvalidStatus", err)
	}
}
