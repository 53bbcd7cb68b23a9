package domain

import "time"

// SavedPost is a user's bookmark of a post (saved_posts table, composite key)
type SavedPost struct {
	UserID  string    `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	PostID  string    `gorm:"column:post_id;primaryKey;size:36" json:"post_id"`
	SavedAt time.Time `gorm:"column:saved_at;autoCreateTime" json:"savedAt"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}
