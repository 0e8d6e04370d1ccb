package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
	"github.com/snaphire/snaphire-api/internal/pkg/imaging"
	"github.com/snaphire/snaphire-api/internal/pkg/jwt"
	"github.com/snaphire/snaphire-api/internal/pkg/password"
	"github.com/snaphire/snaphire-api/internal/pkg/storage"
)

// ProfileRepository is the photographer surface auth needs for registration
// and profile updates.
type ProfileRepository interface {
	Create(ctx context.Context, profile *photographer.Profile, availability []photographer.AvailabilityEntry) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*photographer.Profile, error)
	UpdateDetails(ctx context.Context, profile *photographer.Profile) error
}

// Mailer queues transactional mail.
type Mailer interface {
	Queue(to, toName, subject, templateName string, data interface{})
}

// Service handles authentication and account self-management.
type Service struct {
	users    user.Repository
	profiles ProfileRepository
	tokens   RefreshTokenStore
	jwtSvc   *jwt.Service
	mailer   Mailer
	images   *imaging.Processor
	blobs    storage.Storage
}

// NewService creates the auth service.
func NewService(users user.Repository, profiles ProfileRepository, tokens RefreshTokenStore, jwtSvc *jwt.Service, mailer Mailer, images *imaging.Processor, blobs storage.Storage) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		jwtSvc:   jwtSvc,
		mailer:   mailer,
		images:   images,
		blobs:    blobs,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Photographers also get a pending profile;
// if the profile insert fails the account is rolled back.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	if !user.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if req.Role == string(user.RolePhotographer) {
		if req.Specialization == "" || req.FeePerSession <= 0 || len(req.Availability) == 0 {
			return nil, ErrPhotographerDetails
		}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         user.Role(req.Role),
		Contact:      req.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if u.Role == user.RolePhotographer {
		profile := &photographer.Profile{
			ID:              uuid.New(),
			UserID:          u.ID,
			Specialization:  req.Specialization,
			ExperienceYears: req.ExperienceYears,
			FeePerSession:   req.FeePerSession,
			Status:          photographer.StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.profiles.Create(ctx, profile, req.Availability); err != nil {
			// Roll the account back so a retry with the same email works.
			if delErr := s.users.Delete(ctx, u.ID); delErr != nil {
				log.Error().Err(delErr).Str("user_id", u.ID.String()).Msg("Failed to roll back account after profile error")
			}
			return nil, err
		}
	}

	s.mailer.Queue(u.Email, u.Name, "Welcome to SnapHire", "welcome", map[string]interface{}{
		"Name": u.Name,
		"Role": string(u.Role),
	})

	return s.issueTokens(ctx, u)
}

// Login authenticates an account. Unknown email and wrong password produce
// the same error.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// Refresh rotates a refresh token: the presented token is invalidated and a
// fresh pair is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	if _, err := s.jwtSvc.ValidateRefreshToken(refreshToken); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	tokenHash := jwt.HashRefreshToken(refreshToken)
	userID, err := s.tokens.Lookup(ctx, tokenHash)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if err := s.tokens.Delete(ctx, tokenHash); err != nil {
		log.Warn().Err(err).Msg("Failed to delete rotated refresh token")
	}

	return s.issueTokens(ctx, u)
}

// Logout invalidates a refresh token. An empty token is a no-op.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Delete(ctx, jwt.HashRefreshToken(refreshToken))
}

// Me returns the caller's account, with the photographer profile attached
// when one exists.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (map[string]interface{}, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	out := map[string]interface{}{"user": u.ToResponse()}

	if u.Role == user.RolePhotographer {
		profile, err := s.profiles.GetByUserID(ctx, userID)
		if err == nil && profile != nil {
			out["photographer"] = map[string]interface{}{
				"id":               profile.ID.String(),
				"specialization":   profile.Specialization,
				"experience_years": profile.ExperienceYears,
				"fee_per_session":  profile.FeePerSession,
				"status":           string(profile.Status),
			}
		}
	}

	return out, nil
}

// ProfileUpdate carries the mutable account fields. Zero values leave the
// stored value unchanged.
type ProfileUpdate struct {
	Name    string
	Contact string

	Specialization  string
	ExperienceYears int
	FeePerSession   float64

	Image io.Reader
}

// UpdateProfile applies a partial profile update, processing and storing a
// new avatar when one is uploaded.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Contact != "" {
		u.Contact = update.Contact
	}

	if update.Image != nil {
		processed, err := s.images.ProcessAvatar(update.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		key := fmt.Sprintf("avatars/%s.jpg", userID)
		if err := s.blobs.Put(ctx, key, bytes.NewReader(processed.Data), processed.ContentType); err != nil {
			return nil, err
		}
		u.ProfileImage.String = key
		u.ProfileImage.Valid = true
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	if u.Role == user.RolePhotographer &&
		(update.Specialization != "" || update.ExperienceYears > 0 || update.FeePerSession > 0) {
		profile, err := s.profiles.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			if update.Specialization != "" {
				profile.Specialization = update.Specialization
			}
			if update.ExperienceYears > 0 {
				profile.ExperienceYears = update.ExperienceYears
			}
			if update.FeePerSession > 0 {
				profile.FeePerSession = update.FeePerSession
			}
			if err := s.profiles.UpdateDetails(ctx, profile); err != nil {
				return nil, err
			}
		}
	}

	return u, nil
}

// AvatarURL resolves a stored profile image key to its public URL.
func (s *Service) AvatarURL(key string) string {
	return s.blobs.GetURL(key)
}

func (s *Service) issueTokens(ctx context.Context, u *user.User) (*AuthResponse, error) {
	accessToken, err := s.jwtSvc.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, _, _, err := s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, jwt.HashRefreshToken(refreshToken), u.ID, s.jwtSvc.GetRefreshTTL()); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User: u.ToResponse(),
		Tokens: TokensResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    int(s.jwtSvc.GetAccessTTL().Seconds()),
		},
	}, nil
}
