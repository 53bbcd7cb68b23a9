package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// AnnouncementHandler serves the public announcement banner
type AnnouncementHandler struct {
	service service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(service service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Active handles GET /api/announcements
// @Summary Active announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} domain.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) Active(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Active(c.Request.Context()))
}
