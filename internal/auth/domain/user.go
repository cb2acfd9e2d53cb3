package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	IsActive     bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is the persisted record of an issued refresh token, keyed by
// its JTI claim. Rows are never hard-deleted; revocation flips the flag.
type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	TokenJTI  string    `json:"token_jti" gorm:"uniqueIndex;size:36;not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenBlacklist is the append-only revocation list consulted on every
// token validation. UserID is 0 when the revoked JTI had no stored record.
type TokenBlacklist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TokenJTI  string    `json:"token_jti" gorm:"uniqueIndex;size:36;not null"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
