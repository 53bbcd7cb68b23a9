package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// VoteStore is the slice of the vote repository this service needs
type VoteStore interface {
	Cast(postID, userID string, value, archiveScore, autoDeleteScore int) (newScore int, deleted bool, err error)
}

// PostFinder looks up a single post
type PostFinder interface {
	FindByID(id string) (*domain.Post, error)
}

// UserFinder looks up a single user
type UserFinder interface {
	FindByID(id string) (*domain.User, error)
}

// VoteService defines the interface for vote business logic
type VoteService interface {
	Cast(ctx context.Context, userID string, req *domain.CastVoteRequest) (*domain.VoteResult, error)
}

type voteService struct {
	votes    VoteStore
	posts    PostFinder
	users    UserFinder
	settings SettingsService
}

// NewVoteService creates a new VoteService
func NewVoteService(votes VoteStore, posts PostFinder, users UserFinder, settings SettingsService) VoteService {
	return &voteService{votes: votes, posts: posts, users: users, settings: settings}
}

// Cast validates the voter and the target, then applies the vote. The score
// mutation itself, including the archive flag and the auto-delete cascade,
// runs inside the vote store's transaction.
func (s *voteService) Cast(ctx context.Context, userID string, req *domain.CastVoteRequest) (*domain.VoteResult, error) {
	if req.Value != 1 && req.Value != -1 {
		return nil, common.ErrInvalidInput
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}
	if user.IsBanned(time.Now()) {
		return nil, common.ErrBanned
	}

	post, err := s.posts.FindByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	if post.AuthorID == userID {
		return nil, common.ErrSelfVote
	}

	thresholds := s.settings.Thresholds(ctx)
	autoDelete := s.settings.AutoDeleteScore(ctx)

	newScore, deleted, err := s.votes.Cast(req.PostID, userID, req.Value, thresholds.ArchiveScore, autoDelete)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}

	result := &domain.VoteResult{NewScore: newScore, Deleted: deleted}
	return result, nil
}
