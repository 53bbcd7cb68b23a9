package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// FollowHandler handles category follows
type FollowHandler struct {
	service service.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(service service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow handles POST /api/categories/:id/follow
// @Summary Follow a category
// @Tags follows
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /categories/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	if err := h.service.Follow(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": true})
}

// Unfollow handles DELETE /api/categories/:id/follow
// @Summary Unfollow a category
// @Tags follows
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /categories/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.service.Unfollow(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": false})
}

// Status handles GET /api/categories/:id/follow
// @Summary Check follow status
// @Tags follows
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /categories/{id}/follow [get]
func (h *FollowHandler) Status(c *gin.Context) {
	following, err := h.service.IsFollowing(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// ListFollowed handles GET /api/followed-categories
// @Summary Categories the current user follows
// @Tags follows
// @Produce json
// @Success 200 {array} domain.Category
// @Security BearerAuth
// @Router /followed-categories [get]
func (h *FollowHandler) ListFollowed(c *gin.Context) {
	categories, err := h.service.FollowedCategories(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
