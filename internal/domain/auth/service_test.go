package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

type fakeProfileRepo struct {
	created   []*photographer.Profile
	createErr error
}

func (f *fakeProfileRepo) Create(_ context.Context, p *photographer.Profile, _ []photographer.AvailabilityEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*photographer.Profile, error) {
	for _, p := range f.created {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) UpdateDetails(_ context.Context, _ *photographer.Profile) error {
	return nil
}

type fakeTokenStore struct {
	tokens map[string]uuid.UUID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (f *fakeTokenStore) Save(_ context.Context, hash string, userID uuid.UUID, _ time.Duration) error {
	f.tokens[hash] = userID
	return nil
}

func (f *fakeTokenStore) Lookup(_ context.Context, hash string) (uuid.UUID, error) {
	id, ok := f.tokens[hash]
	if !ok {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return id, nil
}

func (f *fakeTokenStore) Delete(_ context.Context, hash string) error {
	delete(f.tokens, hash)
	return nil
}

type fakeMailer struct {
	queued []string
}

func (f *fakeMailer) Queue(_, _, _, templateName string, _ interface{}) {
	f.queued = append(f.queued, templateName)
}

type authFixture struct {
	service  *Service
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	tokens   *fakeTokenStore
	mailer   *fakeMailer
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepo()
	profiles := &fakeProfileRepo{}
	tokens := newFakeTokenStore()
	mailer := &fakeMailer{}

	jwtSvc := jwt.NewService("test-secret", time.Hour, 24*time.Hour)
	svc := NewService(users, profiles, tokens, jwtSvc, mailer, nil, nil)

	return &authFixture{service: svc, users: users, profiles: profiles, tokens: tokens, mailer: mailer}
}

func clientRegistration() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Dana Client",
		Email:    "Dana@Example.com",
		Password: "correct horse battery",
		Role:     "client",
		Contact:  "+1 555 0100",
	}
}

func photographerRegistration() *RegisterRequest {
	return &RegisterRequest{
		Name:            "Alex Frame",
		Email:           "alex@example.com",
		Password:        "correct horse battery",
		Role:            "photographer",
		Contact:         "+1 555 0101",
		Specialization:  "portrait",
		ExperienceYears: 5,
		FeePerSession:   150,
		Availability: []photographer.AvailabilityEntry{
			{Day: "Monday", TimeSlots: []string{"10:00-11:00"}},
		},
	}
}

func TestRegisterClient(t *testing.T) {
	f := newAuthFixture()

	result, err := f.service.Register(context.Background(), clientRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Error("token pair not issued")
	}
	// Email is normalized to lower case
	if result.User.Email != "dana@example.com" {
		t.Errorf("email = %s, want normalized", result.User.Email)
	}
	if len(f.profiles.created) != 0 {
		t.Error("client registration must not create a photographer profile")
	}
	if len(f.mailer.queued) != 1 || f.mailer.queued[0] != "welcome" {
		t.Errorf("queued mail = %v, want one welcome", f.mailer.queued)
	}
}

func TestRegisterPhotographerCreatesPendingProfile(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register(context.Background(), photographerRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if len(f.profiles.created) != 1 {
		t.Fatalf("profiles created = %d, want 1", len(f.profiles.created))
	}
	if f.profiles.created[0].Status != photographer.StatusPending {
		t.Errorf("profile status = %s, want pending", f.profiles.created[0].Status)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register(context.Background(), clientRegistration()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := f.service.Register(context.Background(), clientRegistration())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("second Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	f := newAuthFixture()

	req := clientRegistration()
	req.Role = "admin"

	_, err := f.service.Register(context.Background(), req)
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("Register() error = %v, want ErrInvalidRole", err)
	}
}

func TestRegisterPhotographerWithoutDetails(t *testing.T) {
	f := newAuthFixture()

	req := photographerRegistration()
	req.Availability = nil

	_, err := f.service.Register(context.Background(), req)
	if !errors.Is(err, ErrPhotographerDetails) {
		t.Fatalf("Register() error = %v, want ErrPhotographerDetails", err)
	}
}

func TestRegisterRollsBackAccountOnProfileError(t *testing.T) {
	f := newAuthFixture()
	f.profiles.createErr = errors.New("insert failed")

	if _, err := f.service.Register(context.Background(), photographerRegistration()); err == nil {
		t.Fatal("Register() expected error")
	}
	if len(f.users.byID) != 0 {
		t.Error("account not rolled back after profile creation failure")
	}

	// The same email registers cleanly once the profile insert works again.
	f.profiles.createErr = nil
	if _, err := f.service.Register(context.Background(), photographerRegistration()); err != nil {
		t.Fatalf("retry Register() error = %v", err)
	}
}

func TestLoginGenericError(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register(context.Background(), clientRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, unknownErr := f.service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongPassErr := f.service.Login(context.Background(), &LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong password",
	})

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("errors = %v / %v, want ErrInvalidCredentials for both", unknownErr, wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Error("unknown email and wrong password must be indistinguishable")
	}
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Register(context.Background(), clientRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	result, err := f.service.Login(context.Background(), &LoginRequest{
		Email:    "DANA@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.User.Role != "client" {
		t.Errorf("role = %s", result.User.Role)
	}
}

func TestRefreshRotation(t *testing.T) {
	f := newAuthFixture()

	registered, err := f.service.Register(context.Background(), clientRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	oldToken := registered.Tokens.RefreshToken

	refreshed, err := f.service.Refresh(context.Background(), oldToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if refreshed.Tokens.RefreshToken == oldToken {
		t.Error("refresh token not rotated")
	}

	// The rotated-out token is dead.
	if _, err := f.service.Refresh(context.Background(), oldToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("reused token error = %v, want ErrInvalidRefreshToken", err)
	}

	// The new one works.
	if _, err := f.service.Refresh(context.Background(), refreshed.Tokens.RefreshToken); err != nil {
		t.Fatalf("Refresh() with rotated token error = %v", err)
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.service.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("error = %v, want ErrInvalidRefreshToken", err)
	}
	if _, err := f.service.Refresh(context.Background(), ""); !errors.Is(err, ErrRefreshTokenRequired) {
		t.Fatalf("error = %v, want ErrRefreshTokenRequired", err)
	}
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	f := newAuthFixture()

	registered, err := f.service.Register(context.Background(), clientRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := f.service.Logout(context.Background(), registered.Tokens.RefreshToken); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := f.service.Refresh(context.Background(), registered.Tokens.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("Refresh() after logout error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	f := newAuthFixture()

	registered, err := f.service.Register(context.Background(), clientRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	userID := uuid.MustParse(registered.User.ID)

	updated, err := f.service.UpdateProfile(context.Background(), userID, ProfileUpdate{Contact: "+1 555 9999"})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Contact != "+1 555 9999" {
		t.Errorf("contact = %s", updated.Contact)
	}
	// Unset fields keep their stored values
	if updated.Name != "Dana Client" {
		t.Errorf("name = %s, want unchanged", updated.Name)
	}
}
