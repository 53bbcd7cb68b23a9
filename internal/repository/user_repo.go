package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// UserRepository accesses the users table
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs returns the users with the given ids; missing ids are skipped
func (r *UserRepository) FindByIDs(ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*domain.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// ListAll returns every user, newest signup first
func (r *UserRepository) ListAll() ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// SetBan updates the ban flag and optional expiry
func (r *UserRepository) SetBan(userID string, banned bool, bannedUntil *time.Time) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"banned":       banned,
		"banned_until": bannedUntil,
		"updated_at":   time.Now(),
	}).Error
}

// Delete removes a user and their sessions
func (r *UserRepository) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Session{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&domain.User{}).Error
	})
}

// PostStats returns post count and average score for a user's posts
func (r *UserRepository) PostStats(userID string) (count int64, avgScore int, err error) {
	if err = r.db.Model(&domain.Post{}).Where("author_id = ?", userID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var avg *float64
	err = r.db.Model(&domain.Post{}).Where("author_id = ?", userID).
		Select("AVG(score)").Scan(&avg).Error
	if err != nil {
		return 0, 0, err
	}
	if avg != nil {
		avgScore = int(*avg)
	}
	return count, avgScore, nil
}
