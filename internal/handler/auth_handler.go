package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/middleware"
	"github.com/lejebolig/lejebolig-backend/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Email is already registered", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.CreatedResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.SuccessResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	// Try cookie first, then JSON body
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		var req refreshRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.RefreshToken == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing refresh token", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	resp, err := h.authService.RefreshToken(refreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token", nil)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	common.SuccessResponse(c, gin.H{
		"access_token": resp.AccessToken,
		"user":         resp.User,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", true, true)
	common.SuccessResponse(c, gin.H{"message": "Logged out"})
}

// GetMe handles GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid user credentials", nil)
		return
	}

	user, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "User not found", nil)
		return
	}
	common.SuccessResponse(c, user)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie("refresh_token", token, 7*24*3600, "/", "", true, true)
}
