package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/cache"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewSlotHold,
			fx.As(new(commands.SlotLocker)),
		),
	),
)

// NewRedis does not fail startup when Redis is down: slot holds degrade to the
// database unique index.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, slot holds disabled until it recovers", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewSlotHold(client *redis.Client, cfg config.Config) *cache.SlotHold {
	return cache.NewSlotHold(client, cfg.Booking.HoldTTL)
}
