package usecase

import (
	authdomain "todo-api/internal/auth/domain"
	authdto "todo-api/internal/auth/dto"
	"todo-api/internal/auth/token"
)

// AuthUsecase defines the interface for registration and credential checks
type AuthUsecase interface {
	// Register creates a new active user after validating email shape and
	// password strength
	Register(email, password string) (*authdomain.User, error)

	// Authenticate verifies email and password, returning the user on success
	Authenticate(email, password string) (*authdomain.User, error)

	// ChangePassword verifies the current password and replaces it
	ChangePassword(userID uint, currentPassword, newPassword string) (*authdomain.User, error)

	// GetByID returns the user or a not-found failure
	GetByID(userID uint) (*authdomain.User, error)

	// Deactivate soft-deletes the user via the active flag
	Deactivate(userID uint) error
}

// TokenUsecase defines the interface for the token lifecycle
type TokenUsecase interface {
	// GenerateTokens mints an access/refresh token pair and persists the
	// refresh-token record
	GenerateTokens(userID uint, email string) (*authdto.TokenResponse, error)

	// ValidateToken decodes the token and checks the blacklist
	ValidateToken(tokenString string) (*token.Claims, error)

	// RefreshAccessToken mints a new access token from a valid refresh token
	RefreshAccessToken(refreshToken string) (*authdto.RefreshResponse, error)

	// RevokeRefreshToken marks the stored record revoked and blacklists the JTI
	RevokeRefreshToken(jti string) error

	// Logout decodes the refresh token and revokes its JTI
	Logout(refreshToken string) error
}
