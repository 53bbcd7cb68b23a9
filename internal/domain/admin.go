package domain

import "time"

// Admin user-list sort modes
const (
	AdminUserSortNewest    = "newest"
	AdminUserSortPostCount = "post-count"
	AdminUserSortAvgScore  = "avg-score"
)

// BanUserRequest is the payload for the admin ban/unban toggle. A nil Until
// with Banned=true means an indefinite ban.
type BanUserRequest struct {
	UserID string     `json:"userId" binding:"required"`
	Banned bool       `json:"banned"`
	Until  *time.Time `json:"until"`
}

// ToggleModeratorRequest grants or revokes a category moderator seat
type ToggleModeratorRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
}

// CreateSectionRequest is the payload for POST /api/admin/sections
type CreateSectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSectionRequest carries partial section updates
type UpdateSectionRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
}

// UpdateCategoryRequest is the payload for PATCH /api/admin/categories
type UpdateCategoryRequest struct {
	CategoryID      string  `json:"categoryId" binding:"required"`
	RulesGuidelines *string `json:"rulesGuidelines"`
}

// PurgeCategoryRequest is the payload for POST /api/admin/purge-category
type PurgeCategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
}

// CreateAnnouncementRequest is the payload for POST /api/admin/announcements
type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// UpdateAnnouncementRequest toggles an announcement's banner visibility
type UpdateAnnouncementRequest struct {
	Active bool `json:"active"`
}
