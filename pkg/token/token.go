package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the admin session token claims. The backend has a single
// shared credential, so the only payload is the admin flag itself.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Manager signs and verifies admin session tokens.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a token manager. ttlHours bounds the admin session
// lifetime.
func NewManager(secret string, ttlHours int) *Manager {
	return &Manager{
		secret: secret,
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

// GenerateAdminToken issues a signed token carrying the admin flag.
func (m *Manager) GenerateAdminToken() (string, error) {
	claims := Claims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses a session token.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// IsAdminToken reports whether tokenString is a live admin session token.
func (m *Manager) IsAdminToken(tokenString string) bool {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return false
	}
	return claims.IsAdmin
}
