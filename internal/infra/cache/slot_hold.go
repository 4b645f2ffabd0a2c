package cache

import (
	"context"
	"time"

	"restaurant-reservations/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const slotHoldPrefix = "slot-hold:"

// releaseScript deletes the key only while it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// SlotHold is a short-lived Redis lock on a (table, start) pair taken while a
// reservation insert is in flight.
type SlotHold struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotHold(client *redis.Client, ttl time.Duration) *SlotHold {
	return &SlotHold{client: client, ttl: ttl}
}

func SlotKey(tableID uuid.UUID, start time.Time) string {
	return slotHoldPrefix + tableID.String() + ":" + start.UTC().Format(time.RFC3339)
}

// Acquire returns an empty token when another request already holds the slot.
func (h *SlotHold) Acquire(ctx context.Context, tableID uuid.UUID, start time.Time) (string, error) {
	token := uuid.NewString()
	ok, err := h.client.SetNX(ctx, SlotKey(tableID, start), token, h.ttl).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (h *SlotHold) Release(ctx context.Context, tableID uuid.UUID, start time.Time, token string) error {
	return releaseScript.Run(ctx, h.client, []string{SlotKey(tableID, start)}, token).Err()
}
