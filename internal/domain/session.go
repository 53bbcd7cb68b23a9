package domain

import "time"

// SessionCookieName is the opaque session-id cookie
const SessionCookieName = "session"

// SessionLifetime is how long a newly created session stays valid
const SessionLifetime = 30 * 24 * time.Hour

// Session domain model (sessions table). Expiry is checked against the wall
// clock on every request; there is no active eviction.
type Session struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"column:user_id;index;size:36" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	IPAddress *string   `gorm:"column:ip_address;size:64" json:"ip_address,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session has passed its expiry
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
