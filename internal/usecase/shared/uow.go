package shared

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/restaurant"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Tables() TableRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	TableByID(ctx context.Context, id uuid.UUID) (*TableSnapshot, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
}

type TableRepository interface {
	Create(ctx context.Context, t *restaurant.Table) error
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error)
	Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
	AddOrderItem(ctx context.Context, reservationID, menuItemID uuid.UUID, quantity int) error
}
