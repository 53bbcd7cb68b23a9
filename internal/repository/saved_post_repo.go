package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// SavedPostRepository accesses the saved_posts bookmark table
type SavedPostRepository struct {
	db *gorm.DB
}

func NewSavedPostRepository(db *gorm.DB) *SavedPostRepository {
	return &SavedPostRepository{db: db}
}

// Save bookmarks a post; saving twice is a no-op
func (r *SavedPostRepository) Save(userID, postID string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.SavedPost{UserID: userID, PostID: postID}).Error
}

func (r *SavedPostRepository) Unsave(userID, postID string) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.SavedPost{}).Error
}

// ListForUser returns a user's bookmarks, newest saved first, capped
func (r *SavedPostRepository) ListForUser(userID string, limit int) ([]*domain.SavedPost, error) {
	var saved []*domain.SavedPost
	err := r.db.Where("user_id = ?", userID).
		Order("saved_at DESC").Limit(limit).Find(&saved).Error
	return saved, err
}
