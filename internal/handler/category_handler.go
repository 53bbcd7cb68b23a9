package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// CategoryHandler serves the category tree and the menu sections
type CategoryHandler struct {
	service service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Tree handles GET /api/categories
// @Summary Category tree
// @Description Two-level category tree; falls back to a built-in default when the table is empty
// @Tags categories
// @Produce json
// @Success 200 {array} domain.CategoryTreeNode
// @Router /categories [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tree(c.Request.Context()))
}

// Sections handles GET /api/menu-sections
// @Summary Menu sections
// @Tags categories
// @Produce json
// @Success 200 {array} domain.MenuSection
// @Router /menu-sections [get]
func (h *CategoryHandler) Sections(c *gin.Context) {
	sections, err := h.service.Sections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}
