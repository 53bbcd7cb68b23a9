package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// FollowerContact is a category follower's notification address
type FollowerContact struct {
	UserID string
	Email  string
}

// FollowRepository accesses the category_follows table
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Exists reports whether the user follows the category
func (r *FollowRepository) Exists(userID, categoryID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.CategoryFollow{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

// Follow is idempotent: following an already-followed category is a no-op
func (r *FollowRepository) Follow(userID, categoryID string) error {
	exists, err := r.Exists(userID, categoryID)
	if err != nil || exists {
		return err
	}
	return r.db.Create(&domain.CategoryFollow{UserID: userID, CategoryID: categoryID}).Error
}

func (r *FollowRepository) Unfollow(userID, categoryID string) error {
	return r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&domain.CategoryFollow{}).Error
}

// CategoriesForUser lists the categories a user follows
func (r *FollowRepository) CategoriesForUser(userID string) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Model(&domain.Category{}).
		Joins("JOIN category_follows ON category_follows.category_id = categories.id").
		Where("category_follows.user_id = ?", userID).
		Find(&categories).Error
	return categories, err
}

// FollowerContacts lists the follower addresses of a category for the
// new-post notification fan-out.
func (r *FollowRepository) FollowerContacts(categoryID string) ([]FollowerContact, error) {
	var contacts []FollowerContact
	err := r.db.Model(&domain.CategoryFollow{}).
		Select("category_follows.user_id AS user_id, users.email AS email").
		Joins("JOIN users ON users.id = category_follows.user_id").
		Where("category_follows.category_id = ?", categoryID).
		Scan(&contacts).Error
	return contacts, err
}
