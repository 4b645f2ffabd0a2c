package shared

import (
	"time"

	"github.com/google/uuid"
)

type RestaurantSnapshot struct {
	ID           uuid.UUID
	Name         string
	OpenMinutes  *int
	CloseMinutes *int
}

type TableSnapshot struct {
	ID                   uuid.UUID
	RestaurantID         uuid.UUID
	Name                 string
	MaxSeats             int
	MaxReservationLength int
}

type MenuItemSnapshot struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Price        float64
}

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	TableID       uuid.UUID `json:"table_id"`
	UserID        uuid.UUID `json:"user_id"`
	Status        string    `json:"status"`
	StartTime     time.Time `json:"start_time"`
	OccurredAt    time.Time `json:"occurred_at"`
}
