package response

import (
	"time"

	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID            `json:"id"`
	RestaurantID   uuid.UUID            `json:"restaurantId"`
	RestaurantName string               `json:"restaurantName"`
	TableID        uuid.UUID            `json:"tableId"`
	TableName      string               `json:"tableName"`
	StartTime      time.Time            `json:"startTime"`
	EndTime        time.Time            `json:"endTime"`
	NumberOfSeats  int                  `json:"numberOfSeats"`
	Status         string               `json:"status"`
	Items          []*OrderItemResponse `json:"items"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type OrderItemResponse struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	items := make([]*OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = &OrderItemResponse{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		}
	}
	return &ReservationResponse{
		ID:             v.ID,
		RestaurantID:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		TableID:        v.TableID,
		TableName:      v.TableName,
		StartTime:      v.StartTime.UTC(),
		EndTime:        v.EndTime.UTC(),
		NumberOfSeats:  v.NumberOfSeats,
		Status:         v.Status,
		Items:          items,
		CreatedAt:      v.CreatedAt.UTC(),
	}
}
