package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// AnnouncementRepository accesses the announcements table
type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// ListActive returns active announcements, newest first
func (r *AnnouncementRepository) ListActive() ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	err := r.db.Where("active = ?", true).Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

// ListAll returns every announcement, newest first (admin view)
func (r *AnnouncementRepository) ListAll() ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *AnnouncementRepository) Create(announcement *domain.Announcement) error {
	return r.db.Create(announcement).Error
}

// SetActive toggles an announcement's banner visibility
func (r *AnnouncementRepository) SetActive(id string, active bool) error {
	return r.db.Model(&domain.Announcement{}).Where("id = ?", id).
		Update("active", active).Error
}

func (r *AnnouncementRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Announcement{}).Error
}
