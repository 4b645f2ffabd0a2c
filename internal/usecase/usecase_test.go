//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	validator := NewTokenValidator(service)
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateToken(userID, "guest@example.com")
		require.NoError(t, err)

		identity, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, "guest@example.com", identity.Email)
	})

	t.Run("token without email", func(t *testing.T) {
		token, err := service.GenerateToken(userID, "")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, "guest@example.com")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestAllowlistOwnerChecker(t *testing.T) {
	checker := NewAllowlistOwnerChecker(config.AuthConfig{AdminUsers: []string{"owner@example.com"}})
	restaurantID := uuid.New()

	assert.True(t, checker.IsOwner(context.Background(), "owner@example.com", restaurantID))
	assert.True(t, checker.IsOwner(context.Background(), "Owner@Example.com", restaurantID))
	assert.False(t, checker.IsOwner(context.Background(), "guest@example.com", restaurantID))
	assert.False(t, checker.IsOwner(context.Background(), "", restaurantID))
}
