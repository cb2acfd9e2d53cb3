package delivery

import (
	"net/http"

	"todo-api/internal/apperror"
	authdto "todo-api/internal/auth/dto"
	"todo-api/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	tokenUsecase usecase.TokenUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, tokenUsecase usecase.TokenUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		tokenUsecase: tokenUsecase,
	}
}

// Register creates a new user and returns a token pair
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.tokenUsecase.GenerateTokens(user.ID, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokens)
}

// Login authenticates a user and returns a token pair
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.tokenUsecase.GenerateTokens(user.ID, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RefreshToken mints a new access token from a refresh token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.tokenUsecase.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented refresh token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tokenUsecase.Logout(req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangePassword replaces the authenticated user's password
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint("userID")

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.ChangePassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := h.authUsecase.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// DeactivateMe soft-deletes the authenticated user's account
// DELETE /api/v1/auth/me
func (h *AuthHandler) DeactivateMe(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := h.authUsecase.Deactivate(userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	body := gin.H{"error": err.Error()}
	if code := apperror.CodeOf(err); code != "" {
		body["code"] = code
	} else {
		body["error"] = "internal server error"
	}
	c.JSON(status, body)
}
