package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// SessionRepository accesses the sessions table
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *domain.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Session{}).Error
}

// LatestIPForUser returns the IP address of the user's most recent session,
// nil when they have none.
func (r *SessionRepository) LatestIPForUser(userID string) (*string, error) {
	var session domain.Session
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return session.IPAddress, nil
}
