package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// SaveHandler handles post bookmarks
type SaveHandler struct {
	service service.SaveService
}

// NewSaveHandler creates a new SaveHandler
func NewSaveHandler(service service.SaveService) *SaveHandler {
	return &SaveHandler{service: service}
}

// Save handles POST /api/posts/:id/save
// @Summary Bookmark a post
// @Tags saves
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /posts/{id}/save [post]
func (h *SaveHandler) Save(c *gin.Context) {
	if err := h.service.Save(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Unsave handles DELETE /api/posts/:id/save
// @Summary Remove a bookmark
// @Tags saves
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /posts/{id}/save [delete]
func (h *SaveHandler) Unsave(c *gin.Context) {
	if err := h.service.Unsave(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}

// ListSaved handles GET /api/saved-posts
// @Summary List bookmarked posts
// @Tags saves
// @Produce json
// @Success 200 {array} domain.PostResponse
// @Security BearerAuth
// @Router /saved-posts [get]
func (h *SaveHandler) ListSaved(c *gin.Context) {
	posts, err := h.service.ListSaved(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
