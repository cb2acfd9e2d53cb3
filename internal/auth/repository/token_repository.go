package repository

import (
	"errors"
	"time"

	authdomain "todo-api/internal/auth/domain"

	"gorm.io/gorm"
)

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()
	return r.db.Create(token).Error
}

func (r *tokenRepository) FindRefreshTokenByJTI(jti string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token_jti = ?", jti).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *tokenRepository) RevokeRefreshToken(jti string) error {
	return r.db.Model(&authdomain.RefreshToken{}).Where("token_jti = ?", jti).
		Updates(map[string]interface{}{
			"revoked":    true,
			"updated_at": time.Now(),
		}).Error
}

// AddToBlacklist appends a revocation entry. The blacklist is deduplicated
// on JTI: re-revoking an already blacklisted token is a no-op.
func (r *tokenRepository) AddToBlacklist(entry *authdomain.TokenBlacklist) error {
	blacklisted, err := r.IsBlacklisted(entry.TokenJTI)
	if err != nil {
		return err
	}
	if blacklisted {
		return nil
	}
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *tokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&authdomain.TokenBlacklist{}).Where("token_jti = ?", jti).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
