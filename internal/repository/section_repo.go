package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// SectionRepository accesses the menu_sections table
type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// ListAll returns every section ordered by sort_order, then id
func (r *SectionRepository) ListAll() ([]*domain.MenuSection, error) {
	var sections []*domain.MenuSection
	err := r.db.Order("sort_order ASC, id ASC").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindByID(id string) (*domain.MenuSection, error) {
	var section domain.MenuSection
	if err := r.db.Where("id = ?", id).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Create(section *domain.MenuSection) error {
	return r.db.Create(section).Error
}

// CreateBatch inserts several sections at once (seeding)
func (r *SectionRepository) CreateBatch(sections []*domain.MenuSection) error {
	return r.db.Create(sections).Error
}

// Update applies the given column updates to a section
func (r *SectionRepository) Update(id string, updates map[string]interface{}) error {
	return r.db.Model(&domain.MenuSection{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SectionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.MenuSection{}).Error
}

// MaxSortOrder returns the highest sort_order, -1 when the table is empty
func (r *SectionRepository) MaxSortOrder() (int, error) {
	var max *int
	err := r.db.Model(&domain.MenuSection{}).Select("MAX(sort_order)").Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}
