package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// CategoryRepository accesses the categories table
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns every category ordered by sort_order, then id
func (r *CategoryRepository) ListAll() ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateRules sets or clears a category's rules/guidelines text
func (r *CategoryRepository) UpdateRules(id string, rules *string) error {
	return r.db.Model(&domain.Category{}).Where("id = ?", id).
		Update("rules_guidelines", rules).Error
}

// CountByMenuSection counts parent categories referencing a menu section
func (r *CategoryRepository) CountByMenuSection(sectionID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Category{}).Where("menu_section = ?", sectionID).
		Count(&count).Error
	return count, err
}
