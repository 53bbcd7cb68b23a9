package domain

// Pseudo-category ids accepted by the listing API. Neither exists as a
// category row.
const (
	CategoryMainPage = "all-main-page"
	CategoryRandom   = "all-random"
)

// Category domain model (categories table). Two-level tree: rows with a nil
// or blank ParentID are parents, the rest are children. Orphaned children
// (dangling parent_id) are tolerated.
type Category struct {
	ID              string  `gorm:"column:id;primaryKey;size:64" json:"id"`
	Slug            string  `gorm:"column:slug;uniqueIndex;size:64" json:"slug"`
	Name            string  `gorm:"column:name;size:128" json:"name"`
	ParentID        *string `gorm:"column:parent_id;size:64" json:"parent_id"`
	SortOrder       int     `gorm:"column:sort_order;default:0" json:"sort_order"`
	MenuSection     string  `gorm:"column:menu_section;size:64;default:discussion" json:"menu_section"`
	DefaultTab      string  `gorm:"column:default_tab;size:16;default:recent" json:"default_tab"`
	RulesGuidelines *string `gorm:"column:rules_guidelines;type:text" json:"rules_guidelines"`
	AuthorOnly      bool    `gorm:"column:author_only" json:"author_only"`
	ImageOnly       bool    `gorm:"column:image_only" json:"image_only"`
}

func (Category) TableName() string {
	return "categories"
}

// MenuSection domain model (menu_sections table)
type MenuSection struct {
	ID        string `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name      string `gorm:"column:name;size:128" json:"name"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sortOrder"`
}

func (MenuSection) TableName() string {
	return "menu_sections"
}

// CategoryTreeNode is one node of the sidebar tree returned by
// GET /api/categories.
type CategoryTreeNode struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug,omitempty"`
	Name        string             `json:"name"`
	MenuSection string             `json:"menuSection,omitempty"`
	Children    []CategoryTreeNode `json:"children,omitempty"`
}

// Moderator grant: the user may post in author-only categories they moderate
// (moderators table, composite key).
type Moderator struct {
	UserID     string `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	CategoryID string `gorm:"column:category_id;primaryKey;size:64" json:"category_id"`
}

func (Moderator) TableName() string {
	return "moderators"
}

// CategoryFollow subscription row (category_follows table, composite key)
type CategoryFollow struct {
	UserID     string `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	CategoryID string `gorm:"column:category_id;primaryKey;size:64" json:"category_id"`
}

func (CategoryFollow) TableName() string {
	return "category_follows"
}
