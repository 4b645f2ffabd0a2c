package queries

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/kitchen"

	"github.com/google/uuid"
)

type RestaurantStore interface {
	List(ctx context.Context) ([]*RestaurantView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	MaxTableSize(ctx context.Context, id uuid.UUID) (int, error)
	// ListVisitedBy returns each restaurant once where userID holds a
	// reservation that ended at or before before.
	ListVisitedBy(ctx context.Context, userID uuid.UUID, before time.Time) ([]*RestaurantView, error)
}

type TableStore interface {
	// Both lists are ordered by max seats, then name.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*TableView, error)
	ListSeatingParty(ctx context.Context, restaurantID uuid.UUID, partySize int) ([]*TableView, error)
}

type ReservationStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListOnDay returns non-cancelled reservations starting in [from, to).
	ListOnDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*DayReservation, error)
}

type KitchenStore interface {
	IngredientLines(ctx context.Context, restaurantID uuid.UUID, start, end time.Time, confirmedOnly bool) ([]kitchen.IngredientLine, error)
	// DishOrders only covers CONFIRMED reservations starting in [from, to).
	DishOrders(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]DishOrder, error)
	MenuItemNames(ctx context.Context, restaurantID uuid.UUID) ([]string, error)
}

type MenuStore interface {
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuView, error)
	ListIngredients(ctx context.Context, restaurantID uuid.UUID) ([]*IngredientView, error)
}

type TicketEncoder interface {
	Encode(content string) ([]byte, error)
}
