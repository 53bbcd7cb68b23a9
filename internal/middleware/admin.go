package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
)

// RequireOwnerAdmin gates the admin surface: the caller must carry the admin
// flag AND match the configured owner email. Bearer-only callers are rejected
// because the owner check needs the user row.
func RequireOwnerAdmin(ownerEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", common.ErrUnauthorized)
			c.Abort()
			return
		}
		if !user.IsAdmin || !strings.EqualFold(user.Email, ownerEmail) {
			common.ErrorResponse(c, http.StatusForbidden, "Admin access required", common.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
