//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs with the same secret and lifetime the app is configured with.
func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token that expired an hour ago, well past the
// validation leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Hour).GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}
