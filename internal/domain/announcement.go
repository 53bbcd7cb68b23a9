package domain

import "time"

// Announcement domain model (announcements table). Active announcements are
// shown in the site-wide banner.
type Announcement struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title       string    `gorm:"column:title;size:512" json:"title"`
	Body        string    `gorm:"column:body;type:text" json:"body"`
	CreatedByID string    `gorm:"column:created_by_id;size:36" json:"created_by_id"`
	Active      bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Announcement) TableName() string {
	return "announcements"
}
