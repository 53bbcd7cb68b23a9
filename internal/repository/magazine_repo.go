package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MagazineRepository accesses the magazine_issues table
type MagazineRepository struct {
	db *gorm.DB
}

func NewMagazineRepository(db *gorm.DB) *MagazineRepository {
	return &MagazineRepository{db: db}
}

// ListAll returns every issue, most recent release first
func (r *MagazineRepository) ListAll() ([]*domain.MagazineIssue, error) {
	var issues []*domain.MagazineIssue
	err := r.db.Order("release_date DESC").Find(&issues).Error
	return issues, err
}

func (r *MagazineRepository) FindBySlug(slug string) (*domain.MagazineIssue, error) {
	var issue domain.MagazineIssue
	if err := r.db.Where("slug = ?", slug).First(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// Slugs returns every existing slug, for unique-slug generation
func (r *MagazineRepository) Slugs() ([]string, error) {
	var slugs []string
	err := r.db.Model(&domain.MagazineIssue{}).Pluck("slug", &slugs).Error
	return slugs, err
}

// MaxSortOrder returns the highest sort_order, 0 when the table is empty
func (r *MagazineRepository) MaxSortOrder() (int, error) {
	var max *int
	err := r.db.Model(&domain.MagazineIssue{}).Select("MAX(sort_order)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *MagazineRepository) Create(issue *domain.MagazineIssue) error {
	return r.db.Create(issue).Error
}
