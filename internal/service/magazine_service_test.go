package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MockMagazineStore is a mock implementation of MagazineStore
type MockMagazineStore struct {
	mock.Mock
}

func (m *MockMagazineStore) ListAll() ([]*domain.MagazineIssue, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MagazineIssue), args.Error(1)
}

func (m *MockMagazineStore) FindBySlug(slug string) (*domain.MagazineIssue, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MagazineIssue), args.Error(1)
}

func (m *MockMagazineStore) Slugs() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMagazineStore) MaxSortOrder() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockMagazineStore) Create(issue *domain.MagazineIssue) error {
	args := m.Called(issue)
	return args.Error(0)
}

// stubUploader records uploads and hands back deterministic URLs
type stubUploader struct {
	uploads []string
}

func (s *stubUploader) Upload(ctx context.Context, subdir, filename string, body io.Reader, contentType string, size int64) (string, error) {
	s.uploads = append(s.uploads, subdir+"/"+filename)
	return "https://cdn.example.com/" + subdir + "/" + filename, nil
}

func TestMagazineService_Create_RequiresPDF(t *testing.T) {
	store := new(MockMagazineStore)
	svc := NewMagazineService(store, nil)

	_, err := svc.Create(context.Background(), &domain.CreateMagazineRequest{Title: "Summer Issue"}, nil, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.CreateMagazineRequest{Title: "Summer Issue"},
		&FileUpload{Filename: "issue.docx", Body: strings.NewReader("x")}, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestMagazineService_Create_DedupesSlug(t *testing.T) {
	store := new(MockMagazineStore)
	uploader := &stubUploader{}
	svc := NewMagazineService(store, uploader)

	store.On("Slugs").Return([]string{"summer-issue"}, nil)
	store.On("MaxSortOrder").Return(7, nil)
	store.On("Create", mock.AnythingOfType("*domain.MagazineIssue")).Return(nil)

	issue, err := svc.Create(context.Background(), &domain.CreateMagazineRequest{
		Title:       "Summer Issue",
		ReleaseDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Blurb:       "Street food special",
	}, &FileUpload{Filename: "summer.PDF", Size: 1024, Body: strings.NewReader("%PDF")}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "summer-issue-2", issue.Slug)
	assert.Equal(t, 8, issue.SortOrder)
	assert.Equal(t, "https://cdn.example.com/magazines/summer-issue-2.pdf", issue.PDFURL)
	assert.Equal(t, "Street food special", *issue.Blurb)
}

func TestMagazineService_GetBySlug_NotFound(t *testing.T) {
	store := new(MockMagazineStore)
	svc := NewMagazineService(store, nil)

	store.On("FindBySlug", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBySlug(context.Background(), "ghost")

	assert.ErrorIs(t, err, common.ErrIssueNotFound)
}

func TestMagazineService_List_SwallowsErrors(t *testing.T) {
	store := new(MockMagazineStore)
	svc := NewMagazineService(store, nil)

	store.On("ListAll").Return(nil, assert.AnError)

	issues := svc.List(context.Background())

	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}
