package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthenticator struct {
	token string
	err   error
	calls int
}

func (s *stubAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	s.calls++
	return s.token, s.err
}

func jwtFor(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestStoreSetAndValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStore("", zap.NewNop())
	s.now = func() time.Time { return now }

	assert.False(t, s.Valid())
	assert.Empty(t, s.Token())

	require.NoError(t, s.Set(jwtFor(t, "k", now.Add(time.Minute))))
	assert.True(t, s.Valid())
	require.NotNil(t, s.User())
	assert.Equal(t, "admin", s.User().UserID)

	now = now.Add(2 * time.Minute)
	assert.False(t, s.Valid())

	s.Clear()
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestStoreAcceptsOpaqueTokenWithoutSecret(t *testing.T) {
	s := NewStore("", zap.NewNop())
	require.NoError(t, s.Set("opaque-token"))
	assert.True(t, s.Valid())
	assert.Nil(t, s.User())
	assert.Equal(t, "opaque-token", s.Token())
}

func TestStoreRejectsUnsignedTokenWithSecret(t *testing.T) {
	s := NewStore("secret", zap.NewNop())
	err := s.Set("opaque-token")
	assert.ErrorIs(t, err, domain.ErrAuth)
	assert.Empty(t, s.Token())

	assert.ErrorIs(t, s.Set(""), domain.ErrUnauthenticated)
}

func TestLogin(t *testing.T) {
	t.Run("empty credentials never reach the backend", func(t *testing.T) {
		a := &stubAuthenticator{token: "t"}
		s := NewStore("", zap.NewNop())
		err := s.Login(context.Background(), a, "  ", "pw")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrEmptyCredentials)
		assert.Zero(t, a.calls)
	})

	t.Run("backend error is returned", func(t *testing.T) {
		a := &stubAuthenticator{err: domain.ErrAuth}
		s := NewStore("", zap.NewNop())
		assert.ErrorIs(t, s.Login(context.Background(), a, "admin", "pw"), domain.ErrAuth)
		assert.False(t, s.Valid())
	})

	t.Run("success stores the token", func(t *testing.T) {
		a := &stubAuthenticator{token: "abc"}
		s := NewStore("", zap.NewNop())
		require.NoError(t, s.Login(context.Background(), a, "admin", "pw"))
		assert.Equal(t, "abc", s.Token())

		s.Logout()
		assert.False(t, s.Valid())
	})
}
