package commands

import (
	"context"
	"time"

	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotLocker guards a (table, start) pair while a reservation insert runs.
// Acquire returns an empty token when the slot is already held.
type SlotLocker interface {
	Acquire(ctx context.Context, tableID uuid.UUID, start time.Time) (string, error)
	Release(ctx context.Context, tableID uuid.UUID, start time.Time, token string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event shared.ReservationEvent)
}
