package service

import (
	"context"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// ActiveAnnouncementLister reads the banner-visible announcements
type ActiveAnnouncementLister interface {
	ListActive() ([]*domain.Announcement, error)
}

// AnnouncementService serves the public announcement banner
type AnnouncementService interface {
	Active(ctx context.Context) []*domain.Announcement
}

type announcementService struct {
	announcements ActiveAnnouncementLister
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcements ActiveAnnouncementLister) AnnouncementService {
	return &announcementService{announcements: announcements}
}

// Active lists banner announcements, newest first. Failures collapse to an
// empty banner rather than a broken page.
func (s *announcementService) Active(ctx context.Context) []*domain.Announcement {
	announcements, err := s.announcements.ListActive()
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("announcement banner: load failed")
		return []*domain.Announcement{}
	}
	return announcements
}
