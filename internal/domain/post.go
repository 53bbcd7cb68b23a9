package domain

import "time"

// Listing tabs
const (
	TabRecent   = "recent"
	TabTop      = "top"
	TabArchived = "archived"
)

// Listing sorts
const (
	SortScoreDesc = "score-desc"
	SortScoreAsc  = "score-asc"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

// Post domain model (posts table). Score starts at 1 (creation credit) and is
// mutated only through the vote path. IsArchived caches score >= archive
// threshold and is recomputed on every vote.
type Post struct {
	ID               string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CategoryID       string    `gorm:"column:category_id;index;size:64" json:"categoryId"`
	AuthorID         string    `gorm:"column:author_id;index;size:36" json:"authorId"`
	Title            string    `gorm:"column:title;size:512" json:"title"`
	Body             string    `gorm:"column:body;type:mediumtext" json:"body"`
	FeaturedImageURL *string   `gorm:"column:featured_image_url;size:512" json:"featuredImageUrl"`
	LinkCount        int       `gorm:"column:link_count;default:0" json:"linkCount"`
	Score            int       `gorm:"column:score;default:1" json:"score"`
	IsArchived       bool      `gorm:"column:is_archived" json:"isArchived"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// PostResponse is a post joined with its author; CategoryName is set on
// main-page and random listings only.
type PostResponse struct {
	Post
	Author       *AuthorInfo `json:"author"`
	CategoryName string      `json:"categoryName,omitempty"`
	SavedAt      *time.Time  `json:"savedAt,omitempty"`
}

// ListPostsResult is the paginated result of the listing engine
type ListPostsResult struct {
	Posts      []*PostResponse `json:"posts"`
	TotalPages int             `json:"totalPages"`
	Total      int64           `json:"total"`
}

// EmptyListResult is what the listing engine returns when it swallows an
// internal error: page rendering must never fail on a store error.
func EmptyListResult() *ListPostsResult {
	return &ListPostsResult{Posts: []*PostResponse{}, TotalPages: 1, Total: 0}
}

// CreatePostRequest carries the multipart form fields of POST /api/posts;
// the featured image file travels separately.
type CreatePostRequest struct {
	CategoryID string
	Title      string
	Body       string
}
