package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RestaurantView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	OpenMinutes  *int      `json:"open_minutes,omitempty"`
	CloseMinutes *int      `json:"close_minutes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantDetail struct {
	RestaurantView
	MaxTableSize int `json:"max_table_size"`
}

type TableView struct {
	ID                   uuid.UUID `json:"id"`
	RestaurantID         uuid.UUID `json:"restaurant_id"`
	Name                 string    `json:"name"`
	MaxSeats             int       `json:"max_seats"`
	MaxReservationLength int       `json:"max_reservation_length"`
}

// DayReservation is a non-cancelled reservation starting on the queried day.
type DayReservation struct {
	ID            uuid.UUID `json:"id"`
	TableID       uuid.UUID `json:"table_id"`
	StartTime     time.Time `json:"start_time"`
	NumberOfSeats int       `json:"number_of_seats"`
	Status        string    `json:"status"`
}

type ReservationView struct {
	ID             uuid.UUID        `json:"id"`
	RestaurantID   uuid.UUID        `json:"restaurant_id"`
	RestaurantName string           `json:"restaurant_name"`
	TableID        uuid.UUID        `json:"table_id"`
	TableName      string           `json:"table_name"`
	UserID         uuid.UUID        `json:"user_id"`
	StartTime      time.Time        `json:"start_time"`
	EndTime        time.Time        `json:"end_time"`
	NumberOfSeats  int              `json:"number_of_seats"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          []*OrderItemView `json:"items"`
}

type OrderItemView struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

type MenuView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	StartMinutes *int            `json:"start_minutes,omitempty"`
	EndMinutes   *int            `json:"end_minutes,omitempty"`
	Items        []*MenuItemView `json:"items"`
}

type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
}

// ReservationMenuView is a served menu with the quantities a reservation has
// already ordered, keyed by menu item id. Items not ordered are absent.
type ReservationMenuView struct {
	MenuView
	Ordered map[uuid.UUID]int
}

type MenuItemDetail struct {
	MenuItemView
	RestaurantID uuid.UUID `json:"restaurant_id"`
}

type IngredientView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DishOrder is one order line of a confirmed reservation.
type DishOrder struct {
	Name      string
	StartTime time.Time
	Quantity  int
}

// AvailableTime is one slot start with the largest bookable table.
type AvailableTime struct {
	Time      string
	MaxSeats  int
	Available bool
}
