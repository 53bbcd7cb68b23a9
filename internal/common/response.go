package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse returns an error JSON response. The top-level "error" string
// keeps compatibility with the web client; "error_info" carries the
// machine-readable code.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error":      message,
		"error_info": errInfo,
	})
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusInternalServerError:
		return "INTERNAL"
	default:
		return "ERROR"
	}
}
