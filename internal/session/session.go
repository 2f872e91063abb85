// Package session owns the operator's bearer token for the lifetime of the
// dashboard process.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/pkg/auth"
	"go.uber.org/zap"
)

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Store holds the current token. Reads are synchronous and never touch the network.
type Store struct {
	mu     sync.RWMutex
	token  string
	user   *auth.UserContext
	secret string
	now    func() time.Time
	logger *zap.Logger
}

func NewStore(secret string, logger *zap.Logger) *Store {
	return &Store{
		secret: secret,
		now:    time.Now,
		logger: logger,
	}
}

// Token returns the bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the claims of the current token, nil for opaque tokens.
func (s *Store) User() *auth.UserContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set installs a token. With a secret configured the token must be a valid
// signed JWT; otherwise unparseable tokens are kept as opaque strings.
func (s *Store) Set(token string) error {
	token = strings.TrimSpace(token)
	user, err := auth.ParseToken(token, s.secret, s.now())
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidToken) && s.secret == "":
		user = nil
	case errors.Is(err, auth.ErrMissingToken):
		return domain.ErrUnauthenticated
	default:
		return fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

// Clear signs the operator out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Valid reports whether a token is present and, when it carries an expiry, unexpired.
func (s *Store) Valid() bool {
	s.mu.RLock()
	token, user := s.token, s.user
	s.mu.RUnlock()

	if token == "" {
		return false
	}
	if user != nil && !user.ExpiresAt.IsZero() && !s.now().Before(user.ExpiresAt) {
		return false
	}
	return true
}

// Context attaches the operator's claims, if any, for downstream logging.
func (s *Store) Context(ctx context.Context) context.Context {
	if u := s.User(); u != nil {
		return auth.ContextWithUserContext(ctx, u)
	}
	return ctx
}

// Login validates the credentials locally, then exchanges them for a token.
func (s *Store) Login(ctx context.Context, a Authenticator, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyCredentials)
	}

	token, err := a.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("username", username), zap.Error(err))
		return err
	}

	if err := s.Set(token); err != nil {
		s.logger.Warn("login returned an unusable token", zap.String("username", username), zap.Error(err))
		return err
	}

	s.logger.Info("signed in", zap.String("username", username))
	return nil
}

// Logout clears the token.
func (s *Store) Logout() {
	s.Clear()
	s.logger.Info("signed out")
}
