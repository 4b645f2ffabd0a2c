package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/events"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if !cfg.Kafka.Enabled {
		slog.Info("kafka disabled, reservation events are not published")
		return events.NoopPublisher{}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	slog.Info("publishing reservation events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}
