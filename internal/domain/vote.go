package domain

import "time"

// Vote is one signed vote per (post, user) pair (votes table, composite key).
// Changing a vote updates the row in place; there is no historical trail.
type Vote struct {
	PostID    string    `gorm:"column:post_id;primaryKey;size:36" json:"post_id"`
	UserID    string    `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	Value     int       `gorm:"column:value" json:"value"` // +1 or -1
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Vote) TableName() string {
	return "votes"
}

// CastVoteRequest is the payload for POST /api/votes
type CastVoteRequest struct {
	PostID string `json:"postId" binding:"required"`
	Value  int    `json:"value" binding:"required"`
}

// VoteResult reports the post's score after a vote. Deleted is set when the
// score fell to the auto-delete threshold and the post is gone.
type VoteResult struct {
	NewScore int  `json:"newScore"`
	Deleted  bool `json:"deleted,omitempty"`
}
