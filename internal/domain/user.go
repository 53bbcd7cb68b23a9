package domain

import "time"

// User domain model (users table)
type User struct {
	ID            string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email         string     `gorm:"column:email;uniqueIndex;size:255" json:"email"`
	EmailVerified bool       `gorm:"column:email_verified" json:"email_verified"`
	Phone         string     `gorm:"column:phone;size:32" json:"-"`
	PhoneVerified bool       `gorm:"column:phone_verified" json:"-"`
	Username      string     `gorm:"column:username;uniqueIndex;size:64" json:"username"`
	PasswordHash  string     `gorm:"column:password_hash;size:255" json:"-"`
	AvatarURL     *string    `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	Bio           *string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	IsAdmin       bool       `gorm:"column:is_admin" json:"is_admin"`
	Banned        bool       `gorm:"column:banned" json:"banned"`
	BannedUntil   *time.Time `gorm:"column:banned_until" json:"banned_until,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsBanned reports whether the ban is currently in effect. A nil BannedUntil
// means the ban is indefinite.
func (u *User) IsBanned(now time.Time) bool {
	if !u.Banned {
		return false
	}
	return u.BannedUntil == nil || u.BannedUntil.After(now)
}

// AuthorInfo is the author fragment embedded in post responses
type AuthorInfo struct {
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}

// MeResponse is returned by GET /api/me
type MeResponse struct {
	ID                string   `json:"id"`
	Username          string   `json:"username"`
	AvatarURL         *string  `json:"avatarUrl"`
	IsAdmin           bool     `json:"isAdmin"`
	IsModerator       bool     `json:"isModerator"`
	AuthorCategoryIDs []string `json:"authorCategoryIds"`
}

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Bio      string `json:"bio"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminUserResponse is a user row plus activity stats for the admin panel
type AdminUserResponse struct {
	User
	PostCount     int64   `json:"postCount"`
	AvgScore      int     `json:"avgScore"`
	IsModerator   bool    `json:"isModerator"`
	LastIPAddress *string `json:"lastIpAddress"`
}
