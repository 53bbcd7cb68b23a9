package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// AdminHandler handles the owner-admin panel endpoints. The whole group is
// gated by middleware.RequireOwnerAdmin, so handlers do not re-check the role.
type AdminHandler struct {
	admin    service.AdminService
	settings service.SettingsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admin service.AdminService, settings service.SettingsService) *AdminHandler {
	return &AdminHandler{admin: admin, settings: settings}
}

// GetSettings handles GET /api/admin/settings
// @Summary Read site settings
// @Tags admin
// @Produce json
// @Success 200 {object} domain.SettingsResponse
// @Security BearerAuth
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PATCH /api/admin/settings
// @Summary Update site settings
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.UpdateSettingsRequest true "Partial settings"
// @Success 200 {object} domain.SettingsResponse
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/settings [patch]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req domain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ListUsers handles GET /api/admin/users
// @Summary List users with activity stats
// @Tags admin
// @Produce json
// @Param sort query string false "newest, post-count or avg-score"
// @Success 200 {array} domain.AdminUserResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), c.DefaultQuery("sort", domain.AdminUserSortNewest))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// BanUser handles POST /api/admin/users/ban
// @Summary Ban or unban a user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.BanUserRequest true "Ban payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/ban [post]
func (h *AdminHandler) BanUser(c *gin.Context) {
	var req domain.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.admin.BanUser(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"banned": req.Banned})
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.admin.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ToggleModerator handles POST /api/admin/users/:id/moderator
// @Summary Grant or revoke a category moderator seat
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body domain.ToggleModeratorRequest true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id}/moderator [post]
func (h *AdminHandler) ToggleModerator(c *gin.Context) {
	var req domain.ToggleModeratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	added, err := h.admin.ToggleModerator(c.Request.Context(), c.Param("id"), req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"moderator": added})
}

// ListPosts handles GET /api/admin/posts
// @Summary Latest posts for moderation
// @Tags admin
// @Produce json
// @Param categoryId query string false "Restrict to one category"
// @Param limit query int false "Max rows, capped at 100"
// @Success 200 {array} domain.PostResponse
// @Security BearerAuth
// @Router /admin/posts [get]
func (h *AdminHandler) ListPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	posts, err := h.admin.ListPosts(c.Request.Context(), c.Query("categoryId"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// DeletePost handles DELETE /api/admin/posts/:id
// @Summary Delete a post and its votes
// @Tags admin
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/posts/{id} [delete]
func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.admin.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PurgeCategory handles POST /api/admin/purge-category
// @Summary Delete every post in a category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.PurgeCategoryRequest true "Category"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/purge-category [post]
func (h *AdminHandler) PurgeCategory(c *gin.Context) {
	var req domain.PurgeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	deleted, err := h.admin.PurgeCategory(c.Request.Context(), req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.CountPurgedPosts(deleted)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListSections handles GET /api/admin/sections
func (h *AdminHandler) ListSections(c *gin.Context) {
	sections, err := h.admin.ListSections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// CreateSection handles POST /api/admin/sections
// @Summary Create a menu section
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.CreateSectionRequest true "Section"
// @Success 201 {object} domain.MenuSection
// @Security BearerAuth
// @Router /admin/sections [post]
func (h *AdminHandler) CreateSection(c *gin.Context) {
	var req domain.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	section, err := h.admin.CreateSection(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateSection handles PATCH /api/admin/sections/:id
func (h *AdminHandler) UpdateSection(c *gin.Context) {
	var req domain.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.admin.UpdateSection(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteSection handles DELETE /api/admin/sections/:id. Sections that still
// hold categories cannot be deleted.
func (h *AdminHandler) DeleteSection(c *gin.Context) {
	if err := h.admin.DeleteSection(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// UpdateCategory handles PATCH /api/admin/categories
// @Summary Update a category's rules text
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.UpdateCategoryRequest true "Category update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/categories [patch]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req domain.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.admin.UpdateCategory(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// ListAnnouncements handles GET /api/admin/announcements
func (h *AdminHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.admin.ListAnnouncements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /api/admin/announcements
func (h *AdminHandler) CreateAnnouncement(c *gin.Context) {
	var req domain.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	announcement, err := h.admin.CreateAnnouncement(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement handles PATCH /api/admin/announcements/:id
func (h *AdminHandler) UpdateAnnouncement(c *gin.Context) {
	var req domain.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.admin.SetAnnouncementActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": req.Active})
}

// DeleteAnnouncement handles DELETE /api/admin/announcements/:id
func (h *AdminHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.admin.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
