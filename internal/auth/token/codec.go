package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims is the claim set carried by every issued token. The JTI lives in
// RegisteredClaims.ID and is the revocation key.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"type"`
}

// Codec signs and verifies token claim sets with a shared HS256 secret.
// Decode fails closed: any signature, expiry or structure problem yields an
// error and no claims.
type Codec struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewCodec(secret string, accessExpiry, refreshExpiry time.Duration) *Codec {
	return &Codec{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (c *Codec) AccessExpiry() time.Duration {
	return c.accessExpiry
}

func (c *Codec) RefreshExpiry() time.Duration {
	return c.refreshExpiry
}

func (c *Codec) EncodeAccess(userID uint, email, jti string) (string, error) {
	return c.encode(userID, email, jti, TypeAccess, c.accessExpiry)
}

func (c *Codec) EncodeRefresh(userID uint, email, jti string) (string, error) {
	return c.encode(userID, email, jti, TypeRefresh, c.refreshExpiry)
}

func (c *Codec) encode(userID uint, email, jti, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode parses and verifies tokenString, returning its claims.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
