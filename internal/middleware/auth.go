package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/service"
	"github.com/foodandtravelmag/mag-backend/pkg/jwt"
)

// Context keys set by the auth middleware
const (
	ctxUserKey   = "user"
	ctxUserIDKey = "userID"
)

// Auth resolves the caller's identity from the session cookie, falling back
// to a Bearer token for API clients. Identity is attached to the context when
// present; the request proceeds anonymously otherwise. Pair with RequireAuth
// on routes that must not be anonymous.
func Auth(auth service.AuthService, jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie(domain.SessionCookieName); err == nil && sessionID != "" {
			user, err := auth.ResolveSession(c.Request.Context(), sessionID)
			if err == nil {
				setIdentity(c, user)
				c.Next()
				return
			}
			if !errors.Is(err, common.ErrUnauthorized) && !errors.Is(err, common.ErrSessionExpired) {
				common.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve session", err)
				c.Abort()
				return
			}
		}

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			claims, err := jwtManager.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err == nil {
				c.Set(ctxUserIDKey, claims.UserID)
			}
		}

		c.Next()
	}
}

// RequireAuth aborts anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", common.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, user *domain.User) {
	c.Set(ctxUserKey, user)
	c.Set(ctxUserIDKey, user.ID)
}

// GetUserID extracts the authenticated user id from context, or ""
func GetUserID(c *gin.Context) string {
	if id, ok := c.Get(ctxUserIDKey); ok {
		if str, ok := id.(string); ok {
			return str
		}
	}
	return ""
}

// GetUser extracts the resolved user from context. Nil for anonymous callers
// and for Bearer-only callers, whose row was never loaded.
func GetUser(c *gin.Context) *domain.User {
	if u, ok := c.Get(ctxUserKey); ok {
		if user, ok := u.(*domain.User); ok {
			return user
		}
	}
	return nil
}
