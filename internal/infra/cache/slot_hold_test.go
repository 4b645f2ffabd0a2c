//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHold(t *testing.T, ttl time.Duration) (*SlotHold, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSlotHold(client, ttl), mr
}

func TestSlotHold(t *testing.T) {
	ctx := context.Background()
	tableID := uuid.New()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("second acquire is refused until release", func(t *testing.T) {
		hold, _ := newTestHold(t, 30*time.Second)

		token, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		again, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		assert.Empty(t, again)

		require.NoError(t, hold.Release(ctx, tableID, start, token))

		after, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		assert.NotEmpty(t, after)
	})

	t.Run("other slots are independent", func(t *testing.T) {
		hold, _ := newTestHold(t, 30*time.Second)

		_, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)

		other, err := hold.Acquire(ctx, tableID, start.Add(time.Hour))
		require.NoError(t, err)
		assert.NotEmpty(t, other)

		otherTable, err := hold.Acquire(ctx, uuid.New(), start)
		require.NoError(t, err)
		assert.NotEmpty(t, otherTable)
	})

	t.Run("hold expires", func(t *testing.T) {
		hold, mr := newTestHold(t, 5*time.Second)

		_, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		mr.FastForward(6 * time.Second)

		token, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("stale token does not release a newer hold", func(t *testing.T) {
		hold, mr := newTestHold(t, 5*time.Second)

		stale, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)
		mr.FastForward(6 * time.Second)
		fresh, err := hold.Acquire(ctx, tableID, start)
		require.NoError(t, err)

		require.NoError(t, hold.Release(ctx, tableID, start, stale))
		got, err := mr.Get(SlotKey(tableID, start))
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})

	t.Run("redis unavailable", func(t *testing.T) {
		hold, mr := newTestHold(t, 5*time.Second)
		mr.Close()

		_, err := hold.Acquire(ctx, tableID, start)
		assert.Error(t, err)
	})
}
