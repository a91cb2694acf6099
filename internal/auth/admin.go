package auth

import (
	"strings"
	"time"

	"github.com/elegance-studio/salon-service/internal/config"
	apperrors "github.com/elegance-studio/salon-service/pkg/errorutil"
)

// Admin authenticates the single salon administrator configured via
// environment. There are no other principals in the system.
type Admin struct {
	email        string
	passwordHash string
	tokens       *TokenManager
}

// NewAdmin hashes the configured password and prepares the token
// manager.
func NewAdmin(cfg config.AuthConfig) (*Admin, error) {
	hash, err := HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &Admin{
		email:        cfg.AdminEmail,
		passwordHash: hash,
		tokens:       NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}, nil
}

// Login verifies the credentials and issues a token.
func (a *Admin) Login(email, password string) (string, time.Time, error) {
	if !strings.EqualFold(email, a.email) {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := ComparePassword(a.passwordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return a.tokens.GenerateToken(a.email)
}

// TokenManager exposes the underlying manager for middleware wiring.
func (a *Admin) TokenManager() *TokenManager {
	return a.tokens
}

// Email returns the configured administrator email.
func (a *Admin) Email() string {
	return a.email
}
