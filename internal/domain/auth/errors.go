package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidRole          = errors.New("role must be client or photographer")
	ErrPhotographerDetails  = errors.New("photographer registration requires specialization, fee and availability")
	ErrRefreshTokenRequired = errors.New("refresh token required")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidImage         = errors.New("unsupported or corrupt image file")
)
