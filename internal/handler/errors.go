package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
)

// respondError maps a service error onto the HTTP taxonomy. Anything not in
// the sentinel list is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrSelfVote),
		errors.Is(err, common.ErrTooManyWords),
		errors.Is(err, common.ErrTooManyLinks):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrSessionExpired),
		errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, common.ErrForbidden),
		errors.Is(err, common.ErrBanned):
		common.ErrorResponse(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrCategoryNotFound),
		errors.Is(err, common.ErrSectionNotFound),
		errors.Is(err, common.ErrIssueNotFound),
		errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, common.ErrUserAlreadyExists):
		common.ErrorResponse(c, http.StatusConflict, err.Error(), nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
