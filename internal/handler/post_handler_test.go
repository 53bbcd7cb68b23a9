package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/service"
)

type mockPostService struct{ mock.Mock }

func (m *mockPostService) List(_ context.Context, categoryID, tab, sort string, page int) *domain.ListPostsResult {
	args := m.Called(categoryID, tab, sort, page)
	return args.Get(0).(*domain.ListPostsResult)
}

func (m *mockPostService) Get(_ context.Context, id string) (*domain.PostResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostResponse), args.Error(1)
}

func (m *mockPostService) Create(_ context.Context, authorID string, req *domain.CreatePostRequest, image *service.FileUpload) (*domain.PostResponse, error) {
	args := m.Called(authorID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostResponse), args.Error(1)
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestPostHandler_Create_WrapsPostInEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := new(mockPostService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.CreatePostRequest"), (*service.FileUpload)(nil)).
		Return(&domain.PostResponse{Post: domain.Post{ID: "p1", Title: "Night Market Noodles"}}, nil)

	router := gin.New()
	router.POST("/api/posts", NewPostHandler(svc).Create)

	body, contentType := multipartForm(t, map[string]string{
		"categoryId": "street-eats",
		"title":      "Night Market Noodles",
		"body":       "Open past midnight.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "post")

	var post domain.PostResponse
	assert.NoError(t, json.Unmarshal(resp["post"], &post))
	assert.Equal(t, "p1", post.ID)
	svc.AssertExpectations(t)
}
