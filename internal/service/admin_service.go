package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// adminPostListMax caps the admin latest-posts listing
const adminPostListMax = 100

// AdminUserStore is the slice of the user repository the admin panel needs
type AdminUserStore interface {
	FindByID(id string) (*domain.User, error)
	ListAll() ([]*domain.User, error)
	SetBan(userID string, banned bool, bannedUntil *time.Time) error
	Delete(userID string) error
	PostStats(userID string) (count int64, avgScore int, err error)
}

// SessionIPStore resolves a user's most recent login address
type SessionIPStore interface {
	LatestIPForUser(userID string) (*string, error)
}

// ModeratorAdminStore grants and inspects moderator seats
type ModeratorAdminStore interface {
	CategoryIDsForUser(userID string) ([]string, error)
	Toggle(userID, categoryID string) (added bool, err error)
}

// AdminPostStore is the slice of the post repository the admin panel needs
type AdminPostStore interface {
	FindByID(id string) (*domain.Post, error)
	ListLatest(categoryID string, limit int) ([]*domain.Post, error)
	IDsByCategory(categoryID string) ([]string, error)
	DeleteWithVotes(ids []string) error
}

// SectionAdminStore is the slice of the section repository the admin panel
// needs.
type SectionAdminStore interface {
	ListAll() ([]*domain.MenuSection, error)
	FindByID(id string) (*domain.MenuSection, error)
	Create(section *domain.MenuSection) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	MaxSortOrder() (int, error)
}

// CategoryAdminStore mutates category rows and answers section references
type CategoryAdminStore interface {
	FindByID(id string) (*domain.Category, error)
	UpdateRules(id string, rules *string) error
	CountByMenuSection(sectionID string) (int64, error)
}

// AnnouncementStore is the slice of the announcement repository this
// service needs.
type AnnouncementStore interface {
	ListAll() ([]*domain.Announcement, error)
	Create(announcement *domain.Announcement) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

// AdminService defines the interface for the admin panel operations
type AdminService interface {
	ListUsers(ctx context.Context, sortMode string) ([]*domain.AdminUserResponse, error)
	BanUser(ctx context.Context, req *domain.BanUserRequest) error
	DeleteUser(ctx context.Context, userID string) error
	ToggleModerator(ctx context.Context, userID, categoryID string) (added bool, err error)

	ListPosts(ctx context.Context, categoryID string, limit int) ([]*domain.PostResponse, error)
	DeletePost(ctx context.Context, postID string) error
	PurgeCategory(ctx context.Context, categoryID string) (deleted int, err error)

	ListSections(ctx context.Context) ([]*domain.MenuSection, error)
	CreateSection(ctx context.Context, req *domain.CreateSectionRequest) (*domain.MenuSection, error)
	UpdateSection(ctx context.Context, id string, req *domain.UpdateSectionRequest) error
	DeleteSection(ctx context.Context, id string) error
	UpdateCategory(ctx context.Context, req *domain.UpdateCategoryRequest) error

	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, authorID string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error)
	SetAnnouncementActive(ctx context.Context, id string, active bool) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

type adminService struct {
	users         AdminUserStore
	sessions      SessionIPStore
	moderators    ModeratorAdminStore
	posts         AdminPostStore
	postResponses UserBatchFinder
	sections      SectionAdminStore
	categories    CategoryAdminStore
	announcements AnnouncementStore
}

// NewAdminService creates a new AdminService
func NewAdminService(
	users AdminUserStore,
	sessions SessionIPStore,
	moderators ModeratorAdminStore,
	posts AdminPostStore,
	postResponses UserBatchFinder,
	sections SectionAdminStore,
	categories CategoryAdminStore,
	announcements AnnouncementStore,
) AdminService {
	return &adminService{
		users:         users,
		sessions:      sessions,
		moderators:    moderators,
		posts:         posts,
		postResponses: postResponses,
		sections:      sections,
		categories:    categories,
		announcements: announcements,
	}
}

// ListUsers returns every user with activity stats. The per-user stat
// queries keep the listing simple; the admin panel is a low-traffic surface.
func (s *adminService) ListUsers(ctx context.Context, sortMode string) ([]*domain.AdminUserResponse, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.AdminUserResponse, 0, len(users))
	for _, user := range users {
		postCount, avgScore, err := s.users.PostStats(user.ID)
		if err != nil {
			return nil, err
		}
		categoryIDs, err := s.moderators.CategoryIDsForUser(user.ID)
		if err != nil {
			return nil, err
		}
		lastIP, err := s.sessions.LatestIPForUser(user.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, &domain.AdminUserResponse{
			User:          *user,
			PostCount:     postCount,
			AvgScore:      avgScore,
			IsModerator:   len(categoryIDs) > 0,
			LastIPAddress: lastIP,
		})
	}

	switch sortMode {
	case domain.AdminUserSortPostCount:
		sort.SliceStable(responses, func(i, j int) bool {
			return responses[i].PostCount > responses[j].PostCount
		})
	case domain.AdminUserSortAvgScore:
		sort.SliceStable(responses, func(i, j int) bool {
			return responses[i].AvgScore > responses[j].AvgScore
		})
	default:
		// ListAll already orders newest signup first
	}
	return responses, nil
}

func (s *adminService) BanUser(ctx context.Context, req *domain.BanUserRequest) error {
	if _, err := s.users.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}
	return s.users.SetBan(req.UserID, req.Banned, req.Until)
}

func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(userID)
}

func (s *adminService) ToggleModerator(ctx context.Context, userID, categoryID string) (bool, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.ErrUserNotFound
		}
		return false, err
	}
	if _, err := s.categories.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.ErrCategoryNotFound
		}
		return false, err
	}
	return s.moderators.Toggle(userID, categoryID)
}

func (s *adminService) ListPosts(ctx context.Context, categoryID string, limit int) ([]*domain.PostResponse, error) {
	if limit <= 0 || limit > adminPostListMax {
		limit = adminPostListMax
	}
	posts, err := s.posts.ListLatest(categoryID, limit)
	if err != nil {
		return nil, err
	}
	return joinAuthors(posts, s.postResponses)
}

// DeletePost is the out-of-band admin deletion, available regardless of score
func (s *adminService) DeletePost(ctx context.Context, postID string) error {
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	return s.posts.DeleteWithVotes([]string{postID})
}

// PurgeCategory removes every post (and its votes) in a category
func (s *adminService) PurgeCategory(ctx context.Context, categoryID string) (int, error) {
	if _, err := s.categories.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.ErrCategoryNotFound
		}
		return 0, err
	}
	ids, err := s.posts.IDsByCategory(categoryID)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.posts.DeleteWithVotes(ids); err != nil {
		return 0, err
	}
	pkglogger.GetLogger().Info().
		Str("category", categoryID).
		Int("deleted", len(ids)).
		Msg("purged category posts")
	return len(ids), nil
}

func (s *adminService) ListSections(ctx context.Context) ([]*domain.MenuSection, error) {
	return s.sections.ListAll()
}

// CreateSection derives the id from the name, suffixing on collision, and
// appends the section at the end of the menu.
func (s *adminService) CreateSection(ctx context.Context, req *domain.CreateSectionRequest) (*domain.MenuSection, error) {
	existing, err := s.sections.ListAll()
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, section := range existing {
		taken[section.ID] = true
	}

	maxOrder, err := s.sections.MaxSortOrder()
	if err != nil {
		return nil, err
	}

	section := &domain.MenuSection{
		ID:        common.UniqueSlug(common.Slugify(req.Name), taken),
		Name:      req.Name,
		SortOrder: maxOrder + 1,
	}
	if err := s.sections.Create(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *adminService) UpdateSection(ctx context.Context, id string, req *domain.UpdateSectionRequest) error {
	if _, err := s.sections.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrSectionNotFound
		}
		return err
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return nil
	}
	return s.sections.Update(id, updates)
}

// DeleteSection refuses while any category still references the section
func (s *adminService) DeleteSection(ctx context.Context, id string) error {
	if _, err := s.sections.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrSectionNotFound
		}
		return err
	}
	count, err := s.categories.CountByMenuSection(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return common.ErrInvalidInput
	}
	return s.sections.Delete(id)
}

func (s *adminService) UpdateCategory(ctx context.Context, req *domain.UpdateCategoryRequest) error {
	if _, err := s.categories.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrCategoryNotFound
		}
		return err
	}
	return s.categories.UpdateRules(req.CategoryID, req.RulesGuidelines)
}

func (s *adminService) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	return s.announcements.ListAll()
}

func (s *adminService) CreateAnnouncement(ctx context.Context, authorID string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error) {
	announcement := &domain.Announcement{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Body:        req.Body,
		CreatedByID: authorID,
		Active:      true,
	}
	if err := s.announcements.Create(announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *adminService) SetAnnouncementActive(ctx context.Context, id string, active bool) error {
	return s.announcements.SetActive(id, active)
}

func (s *adminService) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.announcements.Delete(id)
}

// joinAuthors wraps posts with their author fragments for admin listings
func joinAuthors(posts []*domain.Post, users UserBatchFinder) ([]*domain.PostResponse, error) {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, post := range posts {
		if !seen[post.AuthorID] {
			seen[post.AuthorID] = true
			ids = append(ids, post.AuthorID)
		}
	}
	authors, err := users.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(authors))
	for _, author := range authors {
		byID[author.ID] = author
	}

	responses := make([]*domain.PostResponse, 0, len(posts))
	for _, post := range posts {
		response := &domain.PostResponse{Post: *post}
		if author, ok := byID[post.AuthorID]; ok {
			response.Author = &domain.AuthorInfo{Username: author.Username, AvatarURL: author.AvatarURL}
		}
		responses = append(responses, response)
	}
	return responses, nil
}
