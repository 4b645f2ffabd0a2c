package request

import (
	"time"

	"restaurant-reservations/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId" binding:"required"`
	TableID      uuid.UUID `json:"tableId" binding:"required"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	PartySize    int       `json:"partySize" binding:"required"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		PartySize:    r.PartySize,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddMenuItemRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required"`
}
