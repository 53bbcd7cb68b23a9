package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/common"
	"github.com/foodandtravelmag/mag-backend/internal/domain"
	"github.com/foodandtravelmag/mag-backend/pkg/cache"
	"github.com/foodandtravelmag/mag-backend/pkg/jwt"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// UserAccountStore is the slice of the user repository this service needs
type UserAccountStore interface {
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	Create(user *domain.User) error
}

// SessionStore is the slice of the session repository this service needs
type SessionStore interface {
	Create(session *domain.Session) error
	FindByID(id string) (*domain.Session, error)
	Delete(id string) error
}

// ModeratorLister returns the categories a user moderates
type ModeratorLister interface {
	CategoryIDsForUser(userID string) ([]string, error)
}

// AuthResult is a logged-in identity: the session cookie value plus a bearer
// token for API clients.
type AuthResult struct {
	User      *domain.User
	SessionID string
	Token     string
}

// AuthService defines the interface for registration, login and session
// resolution.
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest, ipAddress string) (*AuthResult, error)
	Login(ctx context.Context, req *domain.LoginRequest, ipAddress string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, userID string) (*domain.MeResponse, error)
	ResolveSession(ctx context.Context, sessionID string) (*domain.User, error)
}

type authService struct {
	users      UserAccountStore
	sessions   SessionStore
	moderators ModeratorLister
	cache      *cache.Service
	jwtManager *jwt.Manager
	ownerEmail string
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserAccountStore, sessions SessionStore, moderators ModeratorLister, cacheService *cache.Service, jwtManager *jwt.Manager, ownerEmail string) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		moderators: moderators,
		cache:      cacheService,
		jwtManager: jwtManager,
		ownerEmail: ownerEmail,
	}
}

// Register creates an account and logs it in immediately. The configured
// owner email gets the admin flag at signup.
func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest, ipAddress string) (*AuthResult, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: string(hash),
		IsAdmin:      strings.EqualFold(req.Email, s.ownerEmail),
	}
	if req.Bio != "" {
		user.Bio = &req.Bio
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user, ipAddress)
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest, ipAddress string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return s.openSession(ctx, user, ipAddress)
}

// openSession creates a session row, warms the session cache, and mints a
// bearer token alongside the cookie.
func (s *authService) openSession(ctx context.Context, user *domain.User, ipAddress string) (*AuthResult, error) {
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(domain.SessionLifetime),
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cache.PrefixSession+session.ID, session, cache.TTLSession); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to cache session")
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, SessionID: session.ID, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.cache.Delete(ctx, cache.PrefixSession+sessionID); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to evict session cache")
	}
	return s.sessions.Delete(sessionID)
}

func (s *authService) Me(ctx context.Context, userID string) (*domain.MeResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	categoryIDs, err := s.moderators.CategoryIDsForUser(userID)
	if err != nil {
		return nil, err
	}
	return &domain.MeResponse{
		ID:                user.ID,
		Username:          user.Username,
		AvatarURL:         user.AvatarURL,
		IsAdmin:           user.IsAdmin,
		IsModerator:       len(categoryIDs) > 0,
		AuthorCategoryIDs: categoryIDs,
	}, nil
}

// ResolveSession turns a session cookie value into a user. Expiry is checked
// against the wall clock on every call; expired rows are deleted lazily here,
// there is no background eviction.
func (s *authService) ResolveSession(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, common.ErrUnauthorized
	}

	var session domain.Session
	cacheKey := cache.PrefixSession + sessionID
	if err := s.cache.Get(ctx, cacheKey, &session); err != nil {
		stored, err := s.sessions.FindByID(sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrUnauthorized
			}
			return nil, err
		}
		session = *stored
		if err := s.cache.Set(ctx, cacheKey, session, cache.TTLSession); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("failed to cache session")
		}
	}

	if session.Expired(time.Now()) {
		if err := s.sessions.Delete(sessionID); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("failed to delete expired session")
		}
		if err := s.cache.Delete(ctx, cacheKey); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("failed to evict expired session cache")
		}
		return nil, common.ErrSessionExpired
	}

	user, err := s.users.FindByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
