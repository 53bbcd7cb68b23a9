package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// ModeratorRepository accesses the moderators grant table
type ModeratorRepository struct {
	db *gorm.DB
}

func NewModeratorRepository(db *gorm.DB) *ModeratorRepository {
	return &ModeratorRepository{db: db}
}

// Exists reports whether the user holds a moderator grant for the category
func (r *ModeratorRepository) Exists(userID, categoryID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Moderator{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

// CategoryIDsForUser lists the categories a user moderates
func (r *ModeratorRepository) CategoryIDsForUser(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Moderator{}).Where("user_id = ?", userID).
		Pluck("category_id", &ids).Error
	return ids, err
}

// Toggle adds the grant when absent, removes it when present. Returns
// whether the grant exists after the call.
func (r *ModeratorRepository) Toggle(userID, categoryID string) (added bool, err error) {
	exists, err := r.Exists(userID, categoryID)
	if err != nil {
		return false, err
	}
	if exists {
		err = r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
			Delete(&domain.Moderator{}).Error
		return false, err
	}
	err = r.db.Create(&domain.Moderator{UserID: userID, CategoryID: categoryID}).Error
	return true, err
}
