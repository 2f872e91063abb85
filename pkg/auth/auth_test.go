package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	valid := signed(t, "s3cret", jwt.MapClaims{
		"sub":   "admin-1",
		"roles": []any{"admin", 7},
		"exp":   now.Add(time.Hour).Unix(),
	})

	t.Run("verified with secret", func(t *testing.T) {
		u, err := ParseToken(valid, "s3cret", now)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", u.UserID)
		assert.Equal(t, []string{"admin"}, u.Roles)
		assert.Equal(t, now.Add(time.Hour).Unix(), u.ExpiresAt.Unix())
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseToken(valid, "other", now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unverified without secret", func(t *testing.T) {
		u, err := ParseToken(valid, "", now)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", u.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := ParseToken(valid, "", now.Add(2*time.Hour))
		assert.ErrorIs(t, err, ErrTokenExpired)
		_, err = ParseToken(valid, "s3cret", now.Add(2*time.Hour))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-jwt", "", now)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ParseToken("", "", now)
		assert.ErrorIs(t, err, ErrMissingToken)
	})
}

func TestUserContextRoundTrip(t *testing.T) {
	_, err := UserContextFromContext(context.Background())
	assert.Error(t, err)

	ctx := ContextWithUserContext(context.Background(), &UserContext{UserID: "u1"})
	u, err := UserContextFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
}
