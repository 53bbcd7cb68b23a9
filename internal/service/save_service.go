package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// savedListMax caps the saved-posts listing per user
const savedListMax = 100

// SavedPostStore is the slice of the saved-post repository this service needs
type SavedPostStore interface {
	Save(userID, postID string) error
	Unsave(userID, postID string) error
	ListForUser(userID string, limit int) ([]*domain.SavedPost, error)
}

// SaveService defines the interface for post bookmarks
type SaveService interface {
	Save(ctx context.Context, userID, postID string) error
	Unsave(ctx context.Context, userID, postID string) error
	ListSaved(ctx context.Context, userID string) ([]*domain.PostResponse, error)
}

type saveService struct {
	saves SavedPostStore
	posts PostStore
	users UserBatchFinder
}

// NewSaveService creates a new SaveService
func NewSaveService(saves SavedPostStore, posts PostStore, users UserBatchFinder) SaveService {
	return &saveService{saves: saves, posts: posts, users: users}
}

// Save bookmarks a post; saving twice is a no-op
func (s *saveService) Save(ctx context.Context, userID, postID string) error {
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	return s.saves.Save(userID, postID)
}

func (s *saveService) Unsave(ctx context.Context, userID, postID string) error {
	return s.saves.Unsave(userID, postID)
}

// ListSaved returns the user's bookmarks, newest saved first. Bookmarks whose
// post has since been deleted (auto-delete or admin) are dropped silently.
func (s *saveService) ListSaved(ctx context.Context, userID string) ([]*domain.PostResponse, error) {
	saved, err := s.saves.ListForUser(userID, savedListMax)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return []*domain.PostResponse{}, nil
	}

	postIDs := make([]string, 0, len(saved))
	savedAt := make(map[string]time.Time, len(saved))
	for _, row := range saved {
		postIDs = append(postIDs, row.PostID)
		savedAt[row.PostID] = row.SavedAt
	}

	posts, err := s.posts.FindByIDs(postIDs)
	if err != nil {
		return nil, err
	}
	postByID := make(map[string]*domain.Post, len(posts))
	for _, post := range posts {
		postByID[post.ID] = post
	}

	// rebuild in saved order, skipping dangling bookmarks
	ordered := make([]*domain.Post, 0, len(posts))
	for _, row := range saved {
		if post, ok := postByID[row.PostID]; ok {
			ordered = append(ordered, post)
		}
	}

	responses, err := joinAuthors(ordered, s.users)
	if err != nil {
		return nil, err
	}
	for _, response := range responses {
		t := savedAt[response.ID]
		response.SavedAt = &t
	}
	return responses, nil
}
