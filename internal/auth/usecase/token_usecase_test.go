package usecase_test

import (
	"testing"
	"time"

	"todo-api/internal/apperror"
	authdomain "todo-api/internal/auth/domain"
	"todo-api/internal/auth/token"
	"todo-api/internal/auth/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-chars!!"

// fakeTokenRepo is an in-memory TokenRepository for usecase tests.
type fakeTokenRepo struct {
	refreshTokens map[string]*authdomain.RefreshToken
	blacklist     map[string]*authdomain.TokenBlacklist
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		refreshTokens: make(map[string]*authdomain.RefreshToken),
		blacklist:     make(map[string]*authdomain.TokenBlacklist),
	}
}

func (f *fakeTokenRepo) SaveRefreshToken(t *authdomain.RefreshToken) error {
	f.refreshTokens[t.TokenJTI] = t
	return nil
}

func (f *fakeTokenRepo) FindRefreshTokenByJTI(jti string) (*authdomain.RefreshToken, error) {
	return f.refreshTokens[jti], nil
}

func (f *fakeTokenRepo) RevokeRefreshToken(jti string) error {
	if t, ok := f.refreshTokens[jti]; ok {
		t.Revoked = true
	}
	return nil
}

func (f *fakeTokenRepo) AddToBlacklist(entry *authdomain.TokenBlacklist) error {
	if _, ok := f.blacklist[entry.TokenJTI]; ok {
		return nil
	}
	f.blacklist[entry.TokenJTI] = entry
	return nil
}

func (f *fakeTokenRepo) IsBlacklisted(jti string) (bool, error) {
	_, ok := f.blacklist[jti]
	return ok, nil
}

func newTokenUsecase(repo *fakeTokenRepo) (usecase.TokenUsecase, *token.Codec) {
	codec := token.NewCodec(testSecret, 15*time.Minute, 7*24*time.Hour)
	return usecase.NewTokenUsecase(repo, codec), codec
}

func TestTokenUsecase_GenerateTokens(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	accessClaims, err := codec.Decode(resp.AccessToken)
	require.NoError(t, err)
	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, token.TypeAccess, accessClaims.TokenType)
	assert.Equal(t, token.TypeRefresh, refreshClaims.TokenType)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)

	// Only the refresh token is persisted
	record := repo.refreshTokens[refreshClaims.ID]
	require.NotNil(t, record)
	assert.Equal(t, uint(1), record.UserID)
	assert.False(t, record.Revoked)
	assert.Nil(t, repo.refreshTokens[accessClaims.ID])
}

func TestTokenUsecase_ValidateToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, _ := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	claims, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenUsecase_ValidateToken_Invalid(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, _ := newTokenUsecase(repo)

	claims, err := uc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, "AUTH_002", apperror.CodeOf(err))
	assert.Equal(t, apperror.KindAuthentication, apperror.KindOf(err))
}

func TestTokenUsecase_ValidateToken_Expired(t *testing.T) {
	repo := newFakeTokenRepo()
	expired := token.NewCodec(testSecret, -1*time.Minute, -1*time.Minute)
	uc := usecase.NewTokenUsecase(repo, expired)

	encoded, err := expired.EncodeAccess(1, "a@x.com", uuid.New().String())
	require.NoError(t, err)

	// An expired token fails at decode, before any blacklist lookup
	_, err = uc.ValidateToken(encoded)
	require.Error(t, err)
	assert.Equal(t, "AUTH_002", apperror.CodeOf(err))
}

func TestTokenUsecase_ValidateToken_Revoked(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)
	require.NoError(t, uc.RevokeRefreshToken(refreshClaims.ID))

	_, err = uc.ValidateToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "AUTH_006", apperror.CodeOf(err))
}

func TestTokenUsecase_RefreshAccessToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	refreshed, err := uc.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.AccessToken, refreshed.AccessToken)
	assert.Equal(t, "bearer", refreshed.TokenType)

	newClaims, err := codec.Decode(refreshed.AccessToken)
	require.NoError(t, err)
	oldClaims, err := codec.Decode(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.TypeAccess, newClaims.TokenType)
	assert.NotEqual(t, oldClaims.ID, newClaims.ID)

	// No rotation: the same refresh token keeps working
	again, err := uc.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, again.AccessToken)
}

func TestTokenUsecase_RefreshAccessToken_RejectsAccessToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, _ := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	refreshed, err := uc.RefreshAccessToken(resp.AccessToken)
	require.Error(t, err)
	assert.Nil(t, refreshed)
	assert.Equal(t, "AUTH_007", apperror.CodeOf(err))
}

func TestTokenUsecase_RefreshAccessToken_UntrackedToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	// Structurally valid refresh token with no stored record
	encoded, err := codec.EncodeRefresh(1, "a@x.com", uuid.New().String())
	require.NoError(t, err)

	_, err = uc.RefreshAccessToken(encoded)
	require.Error(t, err)
	assert.Equal(t, "AUTH_006", apperror.CodeOf(err))
}

func TestTokenUsecase_RefreshAccessToken_Revoked(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)
	require.NoError(t, uc.RevokeRefreshToken(refreshClaims.ID))

	_, err = uc.RefreshAccessToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "AUTH_006", apperror.CodeOf(err))
	assert.Equal(t, apperror.KindAuthentication, apperror.KindOf(err))
}

func TestTokenUsecase_RevokeRefreshToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(7, "a@x.com")
	require.NoError(t, err)
	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)
	jti := refreshClaims.ID

	require.NoError(t, uc.RevokeRefreshToken(jti))

	assert.True(t, repo.refreshTokens[jti].Revoked)
	entry := repo.blacklist[jti]
	require.NotNil(t, entry)
	assert.Equal(t, uint(7), entry.UserID)
}

func TestTokenUsecase_RevokeRefreshToken_Idempotent(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(7, "a@x.com")
	require.NoError(t, err)
	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)
	jti := refreshClaims.ID

	require.NoError(t, uc.RevokeRefreshToken(jti))
	require.NoError(t, uc.RevokeRefreshToken(jti))

	// Revoked state is never undone and the blacklist stays deduplicated
	assert.True(t, repo.refreshTokens[jti].Revoked)
	assert.Len(t, repo.blacklist, 1)
}

func TestTokenUsecase_RevokeRefreshToken_UntrackedUsesSentinelOwner(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, _ := newTokenUsecase(repo)

	jti := uuid.New().String()
	require.NoError(t, uc.RevokeRefreshToken(jti))

	entry := repo.blacklist[jti]
	require.NotNil(t, entry)
	assert.Equal(t, uint(0), entry.UserID)
}

func TestTokenUsecase_Logout(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, codec := newTokenUsecase(repo)

	resp, err := uc.GenerateTokens(1, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(resp.RefreshToken))

	refreshClaims, err := codec.Decode(resp.RefreshToken)
	require.NoError(t, err)
	assert.True(t, repo.refreshTokens[refreshClaims.ID].Revoked)

	// Logging out twice does not error
	require.NoError(t, uc.Logout(resp.RefreshToken))
}

func TestTokenUsecase_Logout_InvalidToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc, _ := newTokenUsecase(repo)

	err := uc.Logout("garbage")
	require.Error(t, err)
	assert.Equal(t, "AUTH_002", apperror.CodeOf(err))
}
