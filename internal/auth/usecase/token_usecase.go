package usecase

import (
	"todo-api/internal/apperror"
	authdomain "todo-api/internal/auth/domain"
	authdto "todo-api/internal/auth/dto"
	"todo-api/internal/auth/repository"
	"todo-api/internal/auth/token"

	"github.com/google/uuid"
)

// tokenUsecase implements TokenUsecase interface
type tokenUsecase struct {
	tokenRepo repository.TokenRepository
	codec     *token.Codec
}

// NewTokenUsecase creates a new instance of tokenUsecase
func NewTokenUsecase(tokenRepo repository.TokenRepository, codec *token.Codec) TokenUsecase {
	return &tokenUsecase{
		tokenRepo: tokenRepo,
		codec:     codec,
	}
}

func (u *tokenUsecase) GenerateTokens(userID uint, email string) (*authdto.TokenResponse, error) {
	accessJTI := uuid.New().String()
	refreshJTI := uuid.New().String()

	accessToken, err := u.codec.EncodeAccess(userID, email, accessJTI)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.codec.EncodeRefresh(userID, email, refreshJTI)
	if err != nil {
		return nil, err
	}

	record := &authdomain.RefreshToken{
		UserID:   userID,
		TokenJTI: refreshJTI,
		Revoked:  false,
	}
	if err := u.tokenRepo.SaveRefreshToken(record); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(u.codec.AccessExpiry().Seconds()),
	}, nil
}

// ValidateToken decodes then consults the blacklist, in that order. An
// expired token fails at decode and never reaches the blacklist check.
func (u *tokenUsecase) ValidateToken(tokenString string) (*token.Claims, error) {
	claims, err := u.codec.Decode(tokenString)
	if err != nil {
		return nil, apperror.Authentication("AUTH_002", "Invalid or expired token")
	}

	if jti := claims.ID; jti != "" {
		blacklisted, err := u.tokenRepo.IsBlacklisted(jti)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			return nil, apperror.Authentication("AUTH_006", "Token has been revoked")
		}
	}

	return claims, nil
}

func (u *tokenUsecase) RefreshAccessToken(refreshToken string) (*authdto.RefreshResponse, error) {
	claims, err := u.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != token.TypeRefresh {
		return nil, apperror.Authentication("AUTH_007", "Invalid token type")
	}

	record, err := u.tokenRepo.FindRefreshTokenByJTI(claims.ID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Revoked {
		return nil, apperror.Authentication("AUTH_006", "Refresh token is invalid or revoked")
	}

	// The refresh token is not rotated here; only a new access token is minted.
	accessJTI := uuid.New().String()
	accessToken, err := u.codec.EncodeAccess(claims.UserID, claims.Email, accessJTI)
	if err != nil {
		return nil, err
	}

	return &authdto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.codec.AccessExpiry().Seconds()),
	}, nil
}

// RevokeRefreshToken revokes the stored record if present and blacklists the
// JTI unconditionally, so logout also covers untracked tokens.
func (u *tokenUsecase) RevokeRefreshToken(jti string) error {
	record, err := u.tokenRepo.FindRefreshTokenByJTI(jti)
	if err != nil {
		return err
	}

	var ownerID uint // sentinel 0 for untracked tokens
	if record != nil {
		ownerID = record.UserID
		if err := u.tokenRepo.RevokeRefreshToken(jti); err != nil {
			return err
		}
	}

	return u.tokenRepo.AddToBlacklist(&authdomain.TokenBlacklist{
		TokenJTI: jti,
		UserID:   ownerID,
	})
}

// Logout decodes the presented refresh token and revokes its JTI. Decode
// skips the blacklist check so that a second logout stays idempotent.
func (u *tokenUsecase) Logout(refreshToken string) error {
	claims, err := u.codec.Decode(refreshToken)
	if err != nil {
		return apperror.Authentication("AUTH_002", "Invalid refresh token")
	}
	if claims.ID == "" {
		return nil
	}
	return u.RevokeRefreshToken(claims.ID)
}
