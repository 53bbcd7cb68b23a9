package repository

import (
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// PostRepository accesses the posts table and the post/vote cascade
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// orderClause maps a listing sort to its ORDER BY. Unknown sorts fall back
// to newest-first.
func orderClause(sort string) string {
	switch sort {
	case domain.SortScoreDesc:
		return "score DESC"
	case domain.SortScoreAsc:
		return "score ASC"
	case domain.SortOldest:
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}

func (r *PostRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// ListByCategory returns one page of a category listing. minScore nil means
// no score filter (the recent tab).
func (r *PostRepository) ListByCategory(categoryID string, minScore *int, sort string, offset, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	query := r.db.Where("category_id = ?", categoryID)
	if minScore != nil {
		query = query.Where("score >= ?", *minScore)
	}
	err := query.Order(orderClause(sort)).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountByCategory counts posts under the same filter predicate as
// ListByCategory.
func (r *PostRepository) CountByCategory(categoryID string, minScore *int) (int64, error) {
	var total int64
	query := r.db.Model(&domain.Post{}).Where("category_id = ?", categoryID)
	if minScore != nil {
		query = query.Where("score >= ?", *minScore)
	}
	err := query.Count(&total).Error
	return total, err
}

// ListAcrossCategories fetches the main-page candidate pool: up to limit
// posts across the given categories under the chosen order.
func (r *PostRepository) ListAcrossCategories(categoryIDs []string, minScore *int, sort string, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	query := r.db.Where("category_id IN ?", categoryIDs)
	if minScore != nil {
		query = query.Where("score >= ?", *minScore)
	}
	err := query.Order(orderClause(sort)).Limit(limit).Find(&posts).Error
	return posts, err
}

// Random returns one uniformly random post from the given categories;
// gorm.ErrRecordNotFound when there are none.
func (r *PostRepository) Random(categoryIDs []string) (*domain.Post, error) {
	randFn := "RAND()"
	if r.db.Dialector.Name() == "sqlite" {
		randFn = "RANDOM()"
	}
	var post domain.Post
	err := r.db.Where("category_id IN ?", categoryIDs).Order(randFn).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ArchivedIDsOldestFirst lists ids of a category's archived-tab members,
// oldest first, for the retention purge.
func (r *PostRepository) ArchivedIDsOldestFirst(categoryID string, archiveScore int) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Post{}).
		Where("category_id = ? AND score >= ?", categoryID, archiveScore).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteWithVotes removes the given posts and their votes in one transaction
func (r *PostRepository) DeleteWithVotes(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id IN ?", ids).Delete(&domain.Vote{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&domain.Post{}).Error
	})
}

// IDsByCategory lists every post id in a category (admin purge)
func (r *PostRepository) IDsByCategory(categoryID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&domain.Post{}).Where("category_id = ?", categoryID).
		Pluck("id", &ids).Error
	return ids, err
}

// ListLatest returns the newest posts for the admin panel; categoryID may
// be empty for a site-wide listing.
func (r *PostRepository) ListLatest(categoryID string, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	query := r.db.Order("created_at DESC").Limit(limit)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// FindByIDs returns the posts with the given ids, in no particular order
func (r *PostRepository) FindByIDs(ids []string) ([]*domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []*domain.Post
	err := r.db.Where("id IN ?", ids).Find(&posts).Error
	return posts, err
}
