package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher emits reservation events keyed by reservation ID so every
// event of one reservation lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish never fails the caller; delivery problems are logged.
func (p *KafkaPublisher) Publish(ctx context.Context, event shared.ReservationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode reservation event", "type", event.Type, "error", err.Error())
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ReservationID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		slog.Warn("failed to publish reservation event",
			"type", event.Type,
			"reservation_id", event.ReservationID.String(),
			"error", err.Error())
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event shared.ReservationEvent) {
	slog.Debug("reservation event dropped, kafka disabled", "type", event.Type)
}
