package domain

import "time"

// MagazineIssue is one uploaded PDF issue rendered by the flipbook viewer
// (magazine_issues table).
type MagazineIssue struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Slug         string    `gorm:"column:slug;uniqueIndex;size:128" json:"slug"`
	Title        string    `gorm:"column:title;size:512" json:"title"`
	ReleaseDate  time.Time `gorm:"column:release_date" json:"releaseDate"`
	Blurb        *string   `gorm:"column:blurb;type:text" json:"blurb"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;size:512" json:"thumbnailUrl"`
	PDFURL       string    `gorm:"column:pdf_url;size:512" json:"pdfUrl"`
	SortOrder    int       `gorm:"column:sort_order;default:0" json:"sortOrder"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (MagazineIssue) TableName() string {
	return "magazine_issues"
}

// CreateMagazineRequest carries the multipart form fields of the admin issue
// upload; the PDF and thumbnail files travel separately.
type CreateMagazineRequest struct {
	Title       string
	ReleaseDate time.Time
	Blurb       string
}
