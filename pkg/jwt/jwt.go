package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed or badly signed tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token's exp claim has passed
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the JWT payload issued to API clients. Browser traffic uses the
// session cookie instead; both paths resolve to the same user record.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Manager signs and verifies API tokens
type Manager struct {
	secretKey []byte
	expiresIn time.Duration
}

// NewManager creates a JWT manager. expiresIn is the access token lifetime.
func NewManager(secret string, expiresIn time.Duration) *Manager {
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return &Manager{
		secretKey: []byte(secret),
		expiresIn: expiresIn,
	}
}

// GenerateToken issues a signed token for the given user
func (m *Manager) GenerateToken(userID, username string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
		},
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken validates a token string and returns its claims
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
