//go:build unit

package db

import (
	"testing"
	"time"

	"restaurant-reservations/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolConfig(t *testing.T) {
	cfg := config.NewTestConfig().DB

	poolCfg, err := NewPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(5), poolCfg.MaxConns)
	assert.Equal(t, "localhost", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(15433), poolCfg.ConnConfig.Port)
	assert.Equal(t, "test_db", poolCfg.ConnConfig.Database)
	assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
}

func TestNewPoolConfig_InvalidPort(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.Port = "not-a-port"

	_, err := NewPoolConfig(cfg)
	assert.Error(t, err)
}
