package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// FollowStore is the slice of the follow repository this service needs
type FollowStore interface {
	Exists(userID, categoryID string) (bool, error)
	Follow(userID, categoryID string) error
	Unfollow(userID, categoryID string) error
	CategoriesForUser(userID string) ([]*domain.Category, error)
}

// FollowService defines the interface for category subscriptions
type FollowService interface {
	Follow(ctx context.Context, userID, categoryID string) error
	Unfollow(ctx context.Context, userID, categoryID string) error
	IsFollowing(ctx context.Context, userID, categoryID string) (bool, error)
	FollowedCategories(ctx context.Context, userID string) ([]*domain.Category, error)
}

type followService struct {
	follows    FollowStore
	categories CategoryStore
}

// NewFollowService creates a new FollowService
func NewFollowService(follows FollowStore, categories CategoryStore) FollowService {
	return &followService{follows: follows, categories: categories}
}

// Follow subscribes the user to a category; following twice is a no-op
func (s *followService) Follow(ctx context.Context, userID, categoryID string) error {
	if _, err := s.categories.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrCategoryNotFound
		}
		return err
	}
	return s.follows.Follow(userID, categoryID)
}

func (s *followService) Unfollow(ctx context.Context, userID, categoryID string) error {
	return s.follows.Unfollow(userID, categoryID)
}

func (s *followService) IsFollowing(ctx context.Context, userID, categoryID string) (bool, error) {
	return s.follows.Exists(userID, categoryID)
}

func (s *followService) FollowedCategories(ctx context.Context, userID string) ([]*domain.Category, error) {
	return s.follows.CategoriesForUser(userID)
}
