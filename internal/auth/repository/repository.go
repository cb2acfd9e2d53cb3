package repository

import authdomain "todo-api/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id uint) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// TokenRepository defines the interface for refresh-token and blacklist data access
type TokenRepository interface {
	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshTokenByJTI(jti string) (*authdomain.RefreshToken, error)
	RevokeRefreshToken(jti string) error
	AddToBlacklist(entry *authdomain.TokenBlacklist) error
	IsBlacklisted(jti string) (bool, error)
}
