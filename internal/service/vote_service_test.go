package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MockVoteStore is a mock implementation of VoteStore
type MockVoteStore struct {
	mock.Mock
}

func (m *MockVoteStore) Cast(postID, userID string, value, archiveScore, autoDeleteScore int) (int, bool, error) {
	args := m.Called(postID, userID, value, archiveScore, autoDeleteScore)
	return args.Int(0), args.Bool(1), args.Error(2)
}

// MockPostFinder is a mock implementation of PostFinder
type MockPostFinder struct {
	mock.Mock
}

func (m *MockPostFinder) FindByID(id string) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// MockUserFinder is a mock implementation of UserFinder
type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// stubSettings serves fixed thresholds without a store
type stubSettings struct {
	top        int
	archive    int
	autoDelete int
	order      string
}

func (s *stubSettings) Thresholds(ctx context.Context) domain.ScoreThresholds {
	return domain.ScoreThresholds{TopScoreThreshold: s.top, ArchiveScore: s.archive}
}
func (s *stubSettings) AutoDeleteScore(ctx context.Context) int { return s.autoDelete }
func (s *stubSettings) MainPageOrder(ctx context.Context) string {
	if s.order == "" {
		return domain.MainPageOrderRecent
	}
	return s.order
}
func (s *stubSettings) Settings(ctx context.Context) (*domain.SettingsResponse, error) {
	return &domain.SettingsResponse{
		TopScoreThreshold: s.top,
		ArchiveScore:      s.archive,
		AutoDeleteScore:   s.autoDelete,
		MainPageOrder:     s.MainPageOrder(ctx),
	}, nil
}
func (s *stubSettings) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	return s.Settings(ctx)
}

func defaultStubSettings() *stubSettings {
	return &stubSettings{top: 25, archive: 500, autoDelete: -10}
}

func TestVoteService_Cast_Success(t *testing.T) {
	votes := new(MockVoteStore)
	posts := new(MockPostFinder)
	users := new(MockUserFinder)
	svc := NewVoteService(votes, posts, users, defaultStubSettings())

	users.On("FindByID", "voter").Return(&domain.User{ID: "voter"}, nil)
	posts.On("FindByID", "post-1").Return(&domain.Post{ID: "post-1", AuthorID: "someone-else", Score: 24}, nil)
	votes.On("Cast", "post-1", "voter", 1, 500, -10).Return(25, false, nil)

	result, err := svc.Cast(context.Background(), "voter", &domain.CastVoteRequest{PostID: "post-1", Value: 1})

	assert.NoError(t, err)
	assert.Equal(t, 25, result.NewScore)
	assert.False(t, result.Deleted)
	votes.AssertExpectations(t)
}

func TestVoteService_Cast_ReportsDeletion(t *testing.T) {
	votes := new(MockVoteStore)
	posts := new(MockPostFinder)
	users := new(MockUserFinder)
	svc := NewVoteService(votes, posts, users, defaultStubSettings())

	users.On("FindByID", "voter").Return(&domain.User{ID: "voter"}, nil)
	posts.On("FindByID", "post-1").Return(&domain.Post{ID: "post-1", AuthorID: "someone-else", Score: -9}, nil)
	votes.On("Cast", "post-1", "voter", -1, 500, -10).Return(-10, true, nil)

	result, err := svc.Cast(context.Background(), "voter", &domain.CastVoteRequest{PostID: "post-1", Value: -1})

	assert.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, -10, result.NewScore)
}

func TestVoteService_Cast_SelfVoteForbidden(t *testing.T) {
	votes := new(MockVoteStore)
	posts := new(MockPostFinder)
	users := new(MockUserFinder)
	svc := NewVoteService(votes, posts, users, defaultStubSettings())

	users.On("FindByID", "author").Return(&domain.User{ID: "author"}, nil)
	posts.On("FindByID", "post-1").Return(&domain.Post{ID: "post-1", AuthorID: "author"}, nil)

	_, err := svc.Cast(context.Background(), "author", &domain.CastVoteRequest{PostID: "post-1", Value: 1})

	assert.ErrorIs(t, err, common.ErrSelfVote)
	votes.AssertNotCalled(t, "Cast", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVoteService_Cast_BannedUserForbidden(t *testing.T) {
	votes := new(MockVoteStore)
	posts := new(MockPostFinder)
	users := new(MockUserFinder)
	svc := NewVoteService(votes, posts, users, defaultStubSettings())

	users.On("FindByID", "banned-user").Return(&domain.User{ID: "banned-user", Banned: true}, nil)

	_, err := svc.Cast(context.Background(), "banned-user", &domain.CastVoteRequest{PostID: "post-1", Value: 1})

	assert.ErrorIs(t, err, common.ErrBanned)
	posts.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestVoteService_Cast_InvalidValue(t *testing.T) {
	svc := NewVoteService(new(MockVoteStore), new(MockPostFinder), new(MockUserFinder), defaultStubSettings())

	_, err := svc.Cast(context.Background(), "voter", &domain.CastVoteRequest{PostID: "post-1", Value: 2})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestVoteService_Cast_MissingPost(t *testing.T) {
	votes := new(MockVoteStore)
	posts := new(MockPostFinder)
	users := new(MockUserFinder)
	svc := NewVoteService(votes, posts, users, defaultStubSettings())

	users.On("FindByID", "voter").Return(&domain.User{ID: "voter"}, nil)
	posts.On("FindByID", "gone").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Cast(context.Background(), "voter", &domain.CastVoteRequest{PostID: "gone", Value: 1})

	assert.ErrorIs(t, err, common.ErrPostNotFound)
}
