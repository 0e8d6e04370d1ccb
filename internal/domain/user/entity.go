package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents the account role (matches user_role enum).
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         Role           `db:"role"`
	Contact      string         `db:"contact"`
	ProfileImage sql.NullString `db:"profile_image"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsClient returns true if the account is a client
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsPhotographer returns true if the account is a photographer
func (u *User) IsPhotographer() bool {
	return u.Role == RolePhotographer
}

// IsAdmin returns true if the account is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRoles returns the roles accepted at registration. Admin accounts are
// provisioned out of band, never through the public endpoint.
func ValidRoles() []Role {
	return []Role{RoleClient, RolePhotographer}
}

// IsValidRole checks if role is valid for registration
func IsValidRole(role string) bool {
	for _, r := range ValidRoles() {
		if string(r) == role {
			return true
		}
	}
	return false
}

// Response is the account shape returned by the API (no password hash).
type Response struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Contact      string `json:"contact"`
	ProfileImage string `json:"profile_image,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts the entity to its API shape.
func (u *User) ToResponse() *Response {
	resp := &Response{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Contact:   u.Contact,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.ProfileImage.Valid {
		resp.ProfileImage = u.ProfileImage.String
	}
	return resp
}
