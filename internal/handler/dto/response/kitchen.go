package response

import (
	"time"

	"restaurant-reservations/internal/domain/kitchen"

	"github.com/google/uuid"
)

type IngredientTotalResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type OrderResponse struct {
	ID               uuid.UUID                             `json:"id"`
	TotalIngredients map[uuid.UUID]IngredientTotalResponse `json:"totalIngredients"`
}

type TimeBlockResponse struct {
	StartTime time.Time       `json:"startTime"`
	Orders    []OrderResponse `json:"orders"`
}

// IngredientReportResponse keys ingredients by id and time blocks by the
// reservation start rendered in UTC with milliseconds.
type IngredientReportResponse struct {
	TotalIngredients map[uuid.UUID]IngredientTotalResponse `json:"totalIngredients"`
	TimeBlocks       map[string]TimeBlockResponse          `json:"timeBlocks"`
}

type CapacityResponse struct {
	SeatsFilled int `json:"seatsFilled"`
	Capacity    int `json:"capacity"`
}

func FromReservationDesc(desc *kitchen.ReservationDesc) *IngredientReportResponse {
	resp := &IngredientReportResponse{
		TotalIngredients: toIngredientTotals(desc.TotalIngredients),
		TimeBlocks:       make(map[string]TimeBlockResponse, len(desc.TimeBlocks)),
	}
	for key, block := range desc.TimeBlocks {
		orders := make([]OrderResponse, len(block.Orders))
		for i, o := range block.Orders {
			orders[i] = OrderResponse{ID: o.ID, TotalIngredients: toIngredientTotals(o.TotalIngredients)}
		}
		resp.TimeBlocks[key] = TimeBlockResponse{StartTime: block.StartTime.UTC(), Orders: orders}
	}
	return resp
}

func FromCapacityInfo(info *kitchen.CapacityInfo) CapacityResponse {
	return CapacityResponse{SeatsFilled: info.SeatsFilled, Capacity: info.Capacity}
}

func toIngredientTotals(in map[uuid.UUID]kitchen.IngredientDesc) map[uuid.UUID]IngredientTotalResponse {
	out := make(map[uuid.UUID]IngredientTotalResponse, len(in))
	for id, ing := range in {
		out[id] = IngredientTotalResponse{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return out
}
