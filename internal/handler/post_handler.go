package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/middleware"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

// PostHandler handles post listing, detail and creation
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts
// @Summary List posts
// @Description Paginated posts for a category, the main page (categoryId=all-main-page) or a single random post (categoryId=all-random)
// @Tags posts
// @Produce json
// @Param categoryId query string true "Category id or pseudo-category"
// @Param tab query string false "recent, top or archived"
// @Param sort query string false "score-desc, score-asc, newest or oldest"
// @Param page query int false "Page number, 1-based"
// @Success 200 {object} domain.ListPostsResult
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	categoryID := c.Query("categoryId")
	if categoryID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "categoryId is required", nil)
		return
	}

	tab := c.Query("tab")
	sort := c.Query("sort")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result := h.service.List(c.Request.Context(), categoryID, tab, sort, page)
	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/posts/:id
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} domain.PostResponse
// @Failure 404 {object} map[string]interface{}
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/posts (multipart form)
// @Summary Create a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param categoryId formData string true "Category id"
// @Param title formData string true "Title"
// @Param body formData string false "Body text"
// @Param image formData file false "Featured image"
// @Success 201 {object} map[string]domain.PostResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	req := &domain.CreatePostRequest{
		CategoryID: c.PostForm("categoryId"),
		Title:      c.PostForm("title"),
		Body:       c.PostForm("body"),
	}

	image, err := formFile(c, "image")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid image upload", err)
		return
	}
	if image != nil {
		defer image.close()
	}

	post, err := h.service.Create(c.Request.Context(), userID, req, image.upload())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// openedFile pairs a service.FileUpload with the multipart handle that backs
// it, so the handler can close the handle after the service is done.
type openedFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (f *openedFile) upload() *service.FileUpload {
	if f == nil {
		return nil
	}
	return &service.FileUpload{
		Filename:    f.header.Filename,
		ContentType: f.header.Header.Get("Content-Type"),
		Size:        f.header.Size,
		Body:        f.file,
	}
}

func (f *openedFile) close() {
	if f != nil {
		_ = f.file.Close()
	}
}

// formFile opens an optional multipart file field. A missing field is not an
// error; it returns (nil, nil).
func formFile(c *gin.Context, field string) (*openedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedFile{file: file, header: header}, nil
}
