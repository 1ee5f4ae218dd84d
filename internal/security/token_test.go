package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("Access token round trip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(7, 3, "owner@example.com")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, int64(3), claims.ShopID)
		assert.Equal(t, "owner@example.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh token carries its type", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(7, 3, "owner@example.com")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(7, 3, "owner@example.com")
		assert.NoError(t, err)

		other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		short := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)
		token, err := short.GenerateAccessToken(7, 3, "owner@example.com")
		assert.NoError(t, err)

		_, err = short.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
