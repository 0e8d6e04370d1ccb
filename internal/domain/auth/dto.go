package auth

import (
	"github.com/snaphire/snaphire-api/internal/domain/photographer"
	"github.com/snaphire/snaphire-api/internal/domain/user"
)

// RegisterRequest is the signup payload. Photographer fields are required
// when role is photographer.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,role"`
	Contact  string `json:"contact" validate:"required,min=5,max=30"`

	Specialization  string                           `json:"specialization,omitempty"`
	ExperienceYears int                              `json:"experience_years,omitempty"`
	FeePerSession   float64                          `json:"fee_per_session,omitempty"`
	Availability    []photographer.AvailabilityEntry `json:"availability,omitempty" validate:"omitempty,dive"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token for rotation or logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokensResponse carries the issued token pair.
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthResponse is returned from register, login and refresh.
type AuthResponse struct {
	User   *user.Response `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}
