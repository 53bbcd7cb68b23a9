package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
	"github.com/foodandtravelmag/mag-backend/pkg/storage"
)

// MagazineStore is the slice of the magazine repository this service needs
type MagazineStore interface {
	ListAll() ([]*domain.MagazineIssue, error)
	FindBySlug(slug string) (*domain.MagazineIssue, error)
	Slugs() ([]string, error)
	MaxSortOrder() (int, error)
	Create(issue *domain.MagazineIssue) error
}

// MagazineService defines the interface for the flipbook issue archive
type MagazineService interface {
	List(ctx context.Context) []*domain.MagazineIssue
	GetBySlug(ctx context.Context, slug string) (*domain.MagazineIssue, error)
	Create(ctx context.Context, req *domain.CreateMagazineRequest, pdf, thumbnail *FileUpload) (*domain.MagazineIssue, error)
}

type magazineService struct {
	issues   MagazineStore
	uploader storage.Uploader
}

// NewMagazineService creates a new MagazineService
func NewMagazineService(issues MagazineStore, uploader storage.Uploader) MagazineService {
	return &magazineService{issues: issues, uploader: uploader}
}

// List returns every issue newest release first; failures collapse to an
// empty archive page.
func (s *magazineService) List(ctx context.Context) []*domain.MagazineIssue {
	issues, err := s.issues.ListAll()
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("magazine archive: load failed")
		return []*domain.MagazineIssue{}
	}
	return issues
}

func (s *magazineService) GetBySlug(ctx context.Context, slug string) (*domain.MagazineIssue, error) {
	issue, err := s.issues.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrIssueNotFound
		}
		return nil, err
	}
	return issue, nil
}

// Create stores the PDF (required) and thumbnail (optional), derives a unique
// slug from the title, and appends the issue at the end of the sort order.
func (s *magazineService) Create(ctx context.Context, req *domain.CreateMagazineRequest, pdf, thumbnail *FileUpload) (*domain.MagazineIssue, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, common.ErrInvalidInput
	}
	if pdf == nil || !strings.HasSuffix(strings.ToLower(pdf.Filename), ".pdf") {
		return nil, common.ErrInvalidInput
	}

	slugs, err := s.issues.Slugs()
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		taken[slug] = true
	}
	slug := common.UniqueSlug(common.Slugify(req.Title), taken)

	pdfURL, err := s.uploader.Upload(ctx, "magazines", slug+".pdf", pdf.Body, "application/pdf", pdf.Size)
	if err != nil {
		return nil, err
	}

	issue := &domain.MagazineIssue{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		PDFURL:      pdfURL,
	}
	if req.Blurb != "" {
		issue.Blurb = &req.Blurb
	}

	if thumbnail != nil {
		ext := ".jpg"
		if dot := strings.LastIndex(thumbnail.Filename, "."); dot >= 0 {
			ext = thumbnail.Filename[dot:]
		}
		url, err := s.uploader.Upload(ctx, "magazines", slug+"-cover"+ext, thumbnail.Body, thumbnail.ContentType, thumbnail.Size)
		if err != nil {
			// the issue ships without a cover rather than failing the upload
			pkglogger.GetLogger().Warn().Err(err).Str("slug", slug).Msg("magazine thumbnail upload failed")
		} else {
			issue.ThumbnailURL = &url
		}
	}

	maxOrder, err := s.issues.MaxSortOrder()
	if err != nil {
		return nil, err
	}
	issue.SortOrder = maxOrder + 1

	if err := s.issues.Create(issue); err != nil {
		return nil, err
	}
	return issue, nil
}
