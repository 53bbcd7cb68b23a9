package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Post errors
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrIssueNotFound    = errors.New("magazine issue not found")

	// Vote errors
	ErrSelfVote = errors.New("you cannot vote on your own post")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrBanned             = errors.New("user is banned")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
