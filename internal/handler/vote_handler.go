package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// VoteHandler handles vote casting
type VoteHandler struct {
	service service.VoteService
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(service service.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Cast handles POST /api/votes
// @Summary Cast or change a vote
// @Description Votes are +1 or -1; re-voting the same value is a no-op, the opposite value switches the vote
// @Tags votes
// @Accept json
// @Produce json
// @Param request body domain.CastVoteRequest true "Vote payload"
// @Success 200 {object} domain.VoteResult
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	var req domain.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Cast(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
