package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	service      service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: service, cookieSecure: cookieSecure}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string, maxAge int) {
	c.SetCookie(domain.SessionCookieName, sessionID, maxAge, "/", "", h.cookieSecure, true)
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(domain.SessionLifetime.Seconds()))
	c.JSON(http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// Login handles POST /api/auth/login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(domain.SessionLifetime.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// Logout handles POST /api/auth/logout. Always succeeds: an unknown or
// already-deleted session still clears the cookie.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(domain.SessionCookieName); err == nil && sessionID != "" {
		_ = h.service.Logout(c.Request.Context(), sessionID)
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /api/me
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} domain.MeResponse
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	me, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
