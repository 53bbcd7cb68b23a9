package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MockAdminUserStore is a mock implementation of AdminUserStore
type MockAdminUserStore struct {
	mock.Mock
}

func (m *MockAdminUserStore) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAdminUserStore) ListAll() ([]*domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockAdminUserStore) SetBan(userID string, banned bool, bannedUntil *time.Time) error {
	args := m.Called(userID, banned, bannedUntil)
	return args.Error(0)
}

func (m *MockAdminUserStore) Delete(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAdminUserStore) PostStats(userID string) (int64, int, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

// MockSessionIPStore is a mock implementation of SessionIPStore
type MockSessionIPStore struct {
	mock.Mock
}

func (m *MockSessionIPStore) LatestIPForUser(userID string) (*string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

// MockModeratorAdminStore is a mock implementation of ModeratorAdminStore
type MockModeratorAdminStore struct {
	mock.Mock
}

func (m *MockModeratorAdminStore) CategoryIDsForUser(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockModeratorAdminStore) Toggle(userID, categoryID string) (bool, error) {
	args := m.Called(userID, categoryID)
	return args.Bool(0), args.Error(1)
}

// MockAdminPostStore is a mock implementation of AdminPostStore
type MockAdminPostStore struct {
	mock.Mock
}

func (m *MockAdminPostStore) FindByID(id string) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockAdminPostStore) ListLatest(categoryID string, limit int) ([]*domain.Post, error) {
	args := m.Called(categoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *MockAdminPostStore) IDsByCategory(categoryID string) ([]string, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAdminPostStore) DeleteWithVotes(ids []string) error {
	args := m.Called(ids)
	return args.Error(0)
}

// MockSectionAdminStore is a mock implementation of SectionAdminStore
type MockSectionAdminStore struct {
	mock.Mock
}

func (m *MockSectionAdminStore) ListAll() ([]*domain.MenuSection, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MenuSection), args.Error(1)
}

func (m *MockSectionAdminStore) FindByID(id string) (*domain.MenuSection, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuSection), args.Error(1)
}

func (m *MockSectionAdminStore) Create(section *domain.MenuSection) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *MockSectionAdminStore) Update(id string, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockSectionAdminStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSectionAdminStore) MaxSortOrder() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockCategoryAdminStore is a mock implementation of CategoryAdminStore
type MockCategoryAdminStore struct {
	mock.Mock
}

func (m *MockCategoryAdminStore) FindByID(id string) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryAdminStore) UpdateRules(id string, rules *string) error {
	args := m.Called(id, rules)
	return args.Error(0)
}

func (m *MockCategoryAdminStore) CountByMenuSection(sectionID string) (int64, error) {
	args := m.Called(sectionID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAnnouncementStore is a mock implementation of AnnouncementStore
type MockAnnouncementStore struct {
	mock.Mock
}

func (m *MockAnnouncementStore) ListAll() ([]*domain.Announcement, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementStore) Create(announcement *domain.Announcement) error {
	args := m.Called(announcement)
	return args.Error(0)
}

func (m *MockAnnouncementStore) SetActive(id string, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

func (m *MockAnnouncementStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type adminFixture struct {
	users         *MockAdminUserStore
	sessions      *MockSessionIPStore
	moderators    *MockModeratorAdminStore
	posts         *MockAdminPostStore
	userBatch     *MockUserBatchFinder
	sections      *MockSectionAdminStore
	categories    *MockCategoryAdminStore
	announcements *MockAnnouncementStore
	svc           AdminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users:         new(MockAdminUserStore),
		sessions:      new(MockSessionIPStore),
		moderators:    new(MockModeratorAdminStore),
		posts:         new(MockAdminPostStore),
		userBatch:     new(MockUserBatchFinder),
		sections:      new(MockSectionAdminStore),
		categories:    new(MockCategoryAdminStore),
		announcements: new(MockAnnouncementStore),
	}
	f.svc = NewAdminService(f.users, f.sessions, f.moderators, f.posts, f.userBatch, f.sections, f.categories, f.announcements)
	return f
}

func TestAdminService_ListUsers_SortByPostCount(t *testing.T) {
	f := newAdminFixture()

	f.users.On("ListAll").Return([]*domain.User{{ID: "quiet"}, {ID: "prolific"}}, nil)
	f.users.On("PostStats", "quiet").Return(int64(2), 5, nil)
	f.users.On("PostStats", "prolific").Return(int64(40), 12, nil)
	f.moderators.On("CategoryIDsForUser", mock.Anything).Return([]string{}, nil)
	f.sessions.On("LatestIPForUser", mock.Anything).Return(nil, nil)

	users, err := f.svc.ListUsers(context.Background(), domain.AdminUserSortPostCount)

	assert.NoError(t, err)
	assert.Equal(t, "prolific", users[0].ID)
	assert.EqualValues(t, 40, users[0].PostCount)
}

func TestAdminService_CreateSection_SlugCollisionGetsSuffix(t *testing.T) {
	f := newAdminFixture()

	f.sections.On("ListAll").Return([]*domain.MenuSection{{ID: "eat", Name: "Eat"}}, nil)
	f.sections.On("MaxSortOrder").Return(4, nil)
	f.sections.On("Create", mock.AnythingOfType("*domain.MenuSection")).Return(nil)

	section, err := f.svc.CreateSection(context.Background(), &domain.CreateSectionRequest{Name: "Eat!"})

	assert.NoError(t, err)
	assert.Equal(t, "eat-2", section.ID)
	assert.Equal(t, 5, section.SortOrder)
}

func TestAdminService_DeleteSection_BlockedWhileReferenced(t *testing.T) {
	f := newAdminFixture()

	f.sections.On("FindByID", "eat").Return(&domain.MenuSection{ID: "eat"}, nil)
	f.categories.On("CountByMenuSection", "eat").Return(int64(3), nil)

	err := f.svc.DeleteSection(context.Background(), "eat")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	f.sections.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestAdminService_PurgeCategory(t *testing.T) {
	f := newAdminFixture()

	f.categories.On("FindByID", "street-eats").Return(&domain.Category{ID: "street-eats"}, nil)
	f.posts.On("IDsByCategory", "street-eats").Return([]string{"p1", "p2"}, nil)
	f.posts.On("DeleteWithVotes", []string{"p1", "p2"}).Return(nil)

	deleted, err := f.svc.PurgeCategory(context.Background(), "street-eats")

	assert.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestAdminService_DeletePost_NotFound(t *testing.T) {
	f := newAdminFixture()

	f.posts.On("FindByID", "gone").Return(nil, gorm.ErrRecordNotFound)

	err := f.svc.DeletePost(context.Background(), "gone")

	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestAdminService_ListPosts_ClampsLimit(t *testing.T) {
	f := newAdminFixture()

	f.posts.On("ListLatest", "", adminPostListMax).Return([]*domain.Post{}, nil)
	f.userBatch.On("FindByIDs", []string{}).Return([]*domain.User{}, nil)

	_, err := f.svc.ListPosts(context.Background(), "", 5000)

	assert.NoError(t, err)
	f.posts.AssertCalled(t, "ListLatest", "", adminPostListMax)
}

func TestAdminService_ToggleModerator(t *testing.T) {
	f := newAdminFixture()

	f.users.On("FindByID", "u1").Return(&domain.User{ID: "u1"}, nil)
	f.categories.On("FindByID", "editors-desk").Return(&domain.Category{ID: "editors-desk"}, nil)
	f.moderators.On("Toggle", "u1", "editors-desk").Return(true, nil)

	added, err := f.svc.ToggleModerator(context.Background(), "u1", "editors-desk")

	assert.NoError(t, err)
	assert.True(t, added)
}
