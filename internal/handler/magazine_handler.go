package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// MagazineHandler serves magazine issues and the admin upload
type MagazineHandler struct {
	service service.MagazineService
}

// NewMagazineHandler creates a new MagazineHandler
func NewMagazineHandler(service service.MagazineService) *MagazineHandler {
	return &MagazineHandler{service: service}
}

// List handles GET /api/magazines
// @Summary List magazine issues
// @Tags magazines
// @Produce json
// @Success 200 {array} domain.MagazineIssue
// @Router /magazines [get]
func (h *MagazineHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// Get handles GET /api/magazines/:slug
// @Summary Get a magazine issue
// @Tags magazines
// @Produce json
// @Param slug path string true "Issue slug"
// @Success 200 {object} domain.MagazineIssue
// @Failure 404 {object} map[string]interface{}
// @Router /magazines/{slug} [get]
func (h *MagazineHandler) Get(c *gin.Context) {
	issue, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// Create handles POST /api/admin/magazines (multipart form)
// @Summary Upload a magazine issue
// @Tags magazines
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Issue title"
// @Param releaseDate formData string false "Release date (YYYY-MM-DD)"
// @Param blurb formData string false "Blurb"
// @Param pdf formData file true "Issue PDF"
// @Param thumbnail formData file false "Cover thumbnail"
// @Success 201 {object} domain.MagazineIssue
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/magazines [post]
func (h *MagazineHandler) Create(c *gin.Context) {
	req := &domain.CreateMagazineRequest{
		Title: c.PostForm("title"),
		Blurb: c.PostForm("blurb"),
	}
	if raw := c.PostForm("releaseDate"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid releaseDate, expected YYYY-MM-DD", err)
			return
		}
		req.ReleaseDate = date
	} else {
		req.ReleaseDate = time.Now()
	}

	pdf, err := formFile(c, "pdf")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid PDF upload", err)
		return
	}
	if pdf != nil {
		defer pdf.close()
	}

	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid thumbnail upload", err)
		return
	}
	if thumbnail != nil {
		defer thumbnail.close()
	}

	issue, err := h.service.Create(c.Request.Context(), req, pdf.upload(), thumbnail.upload())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}
