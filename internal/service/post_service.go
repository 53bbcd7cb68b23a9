package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/internal/repository"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
	"github.com/foodandtravelmag/mag-backend/pkg/mailer"
	"github.com/foodandtravelmag/mag-backend/pkg/storage"
)

// Pagination parameters per listing kind
const (
	perPageStandard  = 20
	maxPagesStandard = 10
	perPageArchived  = 20
	maxPagesArchived = 100

	// archivedMaxTotal caps archived-tab membership per category; the oldest
	// excess is purged when that tab is read.
	archivedMaxTotal = 2000
)

// Main-page sampling parameters
const (
	mainPageCandidates  = 600
	mainPagePerCategory = 15
	mainPagePerPage     = 20
	mainPageMaxPages    = 10
)

// PostStore is the slice of the post repository the listing engine needs
type PostStore interface {
	FindByID(id string) (*domain.Post, error)
	FindByIDs(ids []string) ([]*domain.Post, error)
	Create(post *domain.Post) error
	ListByCategory(categoryID string, minScore *int, sort string, offset, limit int) ([]*domain.Post, error)
	CountByCategory(categoryID string, minScore *int) (int64, error)
	ListAcrossCategories(categoryIDs []string, minScore *int, sort string, limit int) ([]*domain.Post, error)
	Random(categoryIDs []string) (*domain.Post, error)
	ArchivedIDsOldestFirst(categoryID string, archiveScore int) ([]string, error)
	DeleteWithVotes(ids []string) error
}

// CategoryStore is the slice of the category repository this service needs
type CategoryStore interface {
	ListAll() ([]*domain.Category, error)
	FindByID(id string) (*domain.Category, error)
}

// UserBatchFinder resolves authors for listing responses
type UserBatchFinder interface {
	FindByID(id string) (*domain.User, error)
	FindByIDs(ids []string) ([]*domain.User, error)
}

// ModeratorChecker answers the author-only permission question
type ModeratorChecker interface {
	Exists(userID, categoryID string) (bool, error)
}

// FollowerLister provides the notification fan-out audience
type FollowerLister interface {
	FollowerContacts(categoryID string) ([]repository.FollowerContact, error)
}

// FileUpload is an incoming multipart file (featured image, PDF, thumbnail)
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// PostService defines the interface for post listing and creation
type PostService interface {
	List(ctx context.Context, categoryID, tab, sort string, page int) *domain.ListPostsResult
	Get(ctx context.Context, id string) (*domain.PostResponse, error)
	Create(ctx context.Context, authorID string, req *domain.CreatePostRequest, image *FileUpload) (*domain.PostResponse, error)
}

type postService struct {
	posts      PostStore
	categories CategoryStore
	users      UserBatchFinder
	moderators ModeratorChecker
	followers  FollowerLister
	settings   SettingsService
	uploader   storage.Uploader
	mail       *mailer.Mailer
	ownerEmail string
	siteURL    string

	// rng drives the main-page shuffle. Seedable so tests can pin the
	// ordering; guarded because rand.Rand is not goroutine-safe.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewPostService creates a new PostService. rng may be seeded for
// deterministic main-page ordering in tests; nil gets a time-seeded source.
func NewPostService(
	posts PostStore,
	categories CategoryStore,
	users UserBatchFinder,
	moderators ModeratorChecker,
	followers FollowerLister,
	settings SettingsService,
	uploader storage.Uploader,
	mail *mailer.Mailer,
	ownerEmail, siteURL string,
	rng *rand.Rand,
) PostService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &postService{
		posts:      posts,
		categories: categories,
		users:      users,
		moderators: moderators,
		followers:  followers,
		settings:   settings,
		uploader:   uploader,
		mail:       mail,
		ownerEmail: ownerEmail,
		siteURL:    siteURL,
		rng:        rng,
	}
}

// List computes one page of a listing. It never fails: internal errors are
// logged and collapse to an empty result so page rendering stays non-fatal.
func (s *postService) List(ctx context.Context, categoryID, tab, sort string, page int) *domain.ListPostsResult {
	switch categoryID {
	case domain.CategoryRandom:
		return s.listRandom(ctx)
	case domain.CategoryMainPage:
		return s.listMainPage(ctx, page)
	default:
		return s.listCategory(ctx, categoryID, tab, sort, page)
	}
}

func (s *postService) listCategory(ctx context.Context, categoryID, tab, sort string, page int) *domain.ListPostsResult {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			pkglogger.GetLogger().Error().Err(err).Str("category", categoryID).Msg("listing: category lookup failed")
		}
		return domain.EmptyListResult()
	}
	if tab == "" {
		tab = category.DefaultTab
	}

	thresholds := s.settings.Thresholds(ctx)

	var minScore *int
	perPage, maxPages := perPageStandard, maxPagesStandard
	switch tab {
	case domain.TabTop:
		minScore = &thresholds.TopScoreThreshold
	case domain.TabArchived:
		minScore = &thresholds.ArchiveScore
		perPage, maxPages = perPageArchived, maxPagesArchived
		s.purgeArchivedOverflow(categoryID, thresholds.ArchiveScore)
	default:
		// recent: no score filter
	}

	page = clampPage(page, maxPages)

	total, err := s.posts.CountByCategory(categoryID, minScore)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("category", categoryID).Msg("listing: count failed")
		return domain.EmptyListResult()
	}

	posts, err := s.posts.ListByCategory(categoryID, minScore, sort, (page-1)*perPage, perPage)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("category", categoryID).Msg("listing: page query failed")
		return domain.EmptyListResult()
	}

	responses, err := s.withAuthors(posts, nil)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("listing: author join failed")
		return domain.EmptyListResult()
	}

	return &domain.ListPostsResult{
		Posts:      responses,
		TotalPages: totalPages(total, perPage, maxPages),
		Total:      total,
	}
}

// purgeArchivedOverflow deletes the oldest posts over the archived-tab cap.
// Runs synchronously inside the archived-tab read; failures only log.
func (s *postService) purgeArchivedOverflow(categoryID string, archiveScore int) {
	ids, err := s.posts.ArchivedIDsOldestFirst(categoryID, archiveScore)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("category", categoryID).Msg("archived purge: query failed")
		return
	}
	if len(ids) <= archivedMaxTotal {
		return
	}
	excess := ids[:len(ids)-archivedMaxTotal]
	if err := s.posts.DeleteWithVotes(excess); err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("category", categoryID).Msg("archived purge: delete failed")
		return
	}
	pkglogger.GetLogger().Info().
		Str("category", categoryID).
		Int("purged", len(excess)).
		Msg("archived purge: removed oldest posts over cap")
}

// listMainPage samples candidates across all real categories, caps each
// category's contribution, shuffles, and pages the shuffled pool. The
// shuffle re-runs per request, so ordering is intentionally unstable.
func (s *postService) listMainPage(ctx context.Context, page int) *domain.ListPostsResult {
	categories, err := s.categories.ListAll()
	if err != nil || len(categories) == 0 {
		if err != nil {
			pkglogger.GetLogger().Error().Err(err).Msg("main page: category load failed")
		}
		return domain.EmptyListResult()
	}

	categoryIDs := make([]string, 0, len(categories))
	nameByID := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
		nameByID[category.ID] = category.Name
	}

	var minScore *int
	sort := domain.SortNewest
	if s.settings.MainPageOrder(ctx) == domain.MainPageOrderTop {
		thresholds := s.settings.Thresholds(ctx)
		minScore = &thresholds.TopScoreThreshold
		sort = domain.SortScoreDesc
	}

	candidates, err := s.posts.ListAcrossCategories(categoryIDs, minScore, sort, mainPageCandidates)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("main page: candidate query failed")
		return domain.EmptyListResult()
	}

	// per-category cap in arrival order keeps the pool diverse even when one
	// category dominates the candidate window
	perCategory := make(map[string]int, len(categoryIDs))
	pool := make([]*domain.Post, 0, len(candidates))
	for _, post := range candidates {
		if perCategory[post.CategoryID] >= mainPagePerCategory {
			continue
		}
		perCategory[post.CategoryID]++
		pool = append(pool, post)
	}

	s.rngMu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.rngMu.Unlock()

	total := int64(len(pool))
	page = clampPage(page, mainPageMaxPages)
	start := (page - 1) * mainPagePerPage
	if start > len(pool) {
		start = len(pool)
	}
	end := start + mainPagePerPage
	if end > len(pool) {
		end = len(pool)
	}

	responses, err := s.withAuthors(pool[start:end], nameByID)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("main page: author join failed")
		return domain.EmptyListResult()
	}

	return &domain.ListPostsResult{
		Posts:      responses,
		TotalPages: totalPages(total, mainPagePerPage, mainPageMaxPages),
		Total:      total,
	}
}

// listRandom returns exactly one uniformly random post across all categories
func (s *postService) listRandom(ctx context.Context) *domain.ListPostsResult {
	categories, err := s.categories.ListAll()
	if err != nil || len(categories) == 0 {
		if err != nil {
			pkglogger.GetLogger().Error().Err(err).Msg("random post: category load failed")
		}
		return domain.EmptyListResult()
	}

	categoryIDs := make([]string, 0, len(categories))
	nameByID := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
		nameByID[category.ID] = category.Name
	}

	post, err := s.posts.Random(categoryIDs)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			pkglogger.GetLogger().Error().Err(err).Msg("random post: query failed")
		}
		return domain.EmptyListResult()
	}

	responses, err := s.withAuthors([]*domain.Post{post}, nameByID)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("random post: author join failed")
		return domain.EmptyListResult()
	}

	return &domain.ListPostsResult{Posts: responses, TotalPages: 1, Total: 1}
}

func (s *postService) Get(ctx context.Context, id string) (*domain.PostResponse, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	responses, err := s.withAuthors([]*domain.Post{post}, nil)
	if err != nil {
		return nil, err
	}
	return responses[0], nil
}

// Create validates permissions and content, stores the optional featured
// image, persists the post at score 1, and fans out follower notifications
// in the background.
func (s *postService) Create(ctx context.Context, authorID string, req *domain.CreatePostRequest, image *FileUpload) (*domain.PostResponse, error) {
	author, err := s.users.FindByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}
	if author.IsBanned(time.Now()) {
		return nil, common.ErrBanned
	}

	category, err := s.categories.FindByID(req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCategoryNotFound
		}
		return nil, err
	}

	if category.AuthorOnly && !strings.EqualFold(author.Email, s.ownerEmail) {
		isModerator, err := s.moderators.Exists(authorID, category.ID)
		if err != nil {
			return nil, err
		}
		if !isModerator {
			return nil, common.ErrForbidden
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, common.ErrInvalidInput
	}
	body := req.Body
	if category.ImageOnly {
		// image-only categories carry no text body, whatever was submitted
		body = ""
	} else if strings.TrimSpace(body) == "" {
		return nil, common.ErrInvalidInput
	}

	linkCount, err := common.ValidatePostBody(body)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		AuthorID:   authorID,
		Title:      title,
		Body:       body,
		LinkCount:  linkCount,
		Score:      1,
	}

	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			// the post survives a failed upload, it just loses its image
			pkglogger.GetLogger().Warn().Err(err).Str("filename", image.Filename).Msg("featured image upload failed")
		} else {
			post.FeaturedImageURL = &url
		}
	}

	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	go s.notifyFollowers(category, post, author)

	return &domain.PostResponse{
		Post: *post,
		Author: &domain.AuthorInfo{
			Username:  author.Username,
			AvatarURL: author.AvatarURL,
		},
	}, nil
}

func (s *postService) uploadImage(ctx context.Context, image *FileUpload) (string, error) {
	if s.uploader == nil {
		return "", errors.New("no storage backend configured")
	}
	ext := ""
	if dot := strings.LastIndex(image.Filename, "."); dot >= 0 {
		ext = image.Filename[dot:]
	}
	filename := uuid.New().String() + ext
	return s.uploader.Upload(ctx, "posts", filename, image.Body, image.ContentType, image.Size)
}

// notifyFollowers emails everyone following the category except the author.
// Best-effort: failures are logged, never retried, and never reach the
// request that created the post.
func (s *postService) notifyFollowers(category *domain.Category, post *domain.Post, author *domain.User) {
	contacts, err := s.followers.FollowerContacts(category.ID)
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Str("category", category.ID).Msg("follower fan-out: lookup failed")
		return
	}

	postURL := fmt.Sprintf("%s/c/%s/%s", strings.TrimRight(s.siteURL, "/"), category.ID, post.ID)
	for _, contact := range contacts {
		if contact.UserID == author.ID {
			continue
		}
		notification := mailer.NewPostNotification{
			To:           contact.Email,
			CategoryName: category.Name,
			PostTitle:    post.Title,
			PostURL:      postURL,
		}
		if err := s.mail.SendNewPostNotification(notification); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Str("to", contact.Email).Msg("follower notification failed")
		}
	}
}

// withAuthors joins posts with their author fragments; nameByID, when set,
// also annotates each post with its category name.
func (s *postService) withAuthors(posts []*domain.Post, nameByID map[string]string) ([]*domain.PostResponse, error) {
	responses, err := joinAuthors(posts, s.users)
	if err != nil {
		return nil, err
	}
	if nameByID != nil {
		for _, response := range responses {
			response.CategoryName = nameByID[response.CategoryID]
		}
	}
	return responses, nil
}

// clampPage forces page into [1, maxPages]
func clampPage(page, maxPages int) int {
	if page < 1 {
		return 1
	}
	if page > maxPages {
		return maxPages
	}
	return page
}

// totalPages derives the page count from a total under the listing's cap;
// an empty category reports zero pages.
func totalPages(total int64, perPage, maxPages int) int {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages > maxPages {
		pages = maxPages
	}
	return pages
}
