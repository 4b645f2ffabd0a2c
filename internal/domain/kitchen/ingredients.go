// Package kitchen turns confirmed order lines into prep reports.
package kitchen

import (
	"time"

	"github.com/google/uuid"
)

// TimeBlockLayout renders bucket keys as UTC ISO-8601 with milliseconds.
const TimeBlockLayout = "2006-01-02T15:04:05.000Z07:00"

// IngredientLine is one joined row: a recipe edge used by an ordered dish.
// Quantity is the recipe quantity and is summed once per row, never scaled by
// the order quantity.
type IngredientLine struct {
	ReservationID    uuid.UUID
	ReservationStart time.Time
	IngredientID     uuid.UUID
	IngredientName   string
	Quantity         float64
	Unit             string
}

type IngredientDesc struct {
	ID       uuid.UUID
	Name     string
	Quantity float64
	Unit     string
}

type OrderDesc struct {
	ID               uuid.UUID
	TotalIngredients map[uuid.UUID]IngredientDesc
}

type TimeBlock struct {
	StartTime time.Time
	Orders    []OrderDesc
}

type ReservationDesc struct {
	TotalIngredients map[uuid.UUID]IngredientDesc
	TimeBlocks       map[string]*TimeBlock
}

func TimeBlockKey(t time.Time) string {
	return t.UTC().Format(TimeBlockLayout)
}

type aggregatedOrder struct {
	id          uuid.UUID
	start       time.Time
	ingredients map[uuid.UUID]IngredientDesc
}

// AggregateIngredients folds lines into per-reservation totals, rolls them up
// into restaurant-wide totals and buckets the orders by reservation start.
// Lines are expected in ascending reservation start order; orders within a
// bucket keep the order in which they were first seen.
func AggregateIngredients(lines []IngredientLine) ReservationDesc {
	orders := make(map[uuid.UUID]*aggregatedOrder)
	seen := make([]uuid.UUID, 0)

	for _, line := range lines {
		order, ok := orders[line.ReservationID]
		if !ok {
			order = &aggregatedOrder{
				id:          line.ReservationID,
				start:       line.ReservationStart,
				ingredients: make(map[uuid.UUID]IngredientDesc),
			}
			orders[line.ReservationID] = order
			seen = append(seen, line.ReservationID)
		}
		accumulate(order.ingredients, IngredientDesc{
			ID:       line.IngredientID,
			Name:     line.IngredientName,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		})
	}

	desc := ReservationDesc{
		TotalIngredients: make(map[uuid.UUID]IngredientDesc),
		TimeBlocks:       make(map[string]*TimeBlock),
	}

	for _, id := range seen {
		order := orders[id]
		for _, ing := range order.ingredients {
			accumulate(desc.TotalIngredients, ing)
		}

		key := TimeBlockKey(order.start)
		block, ok := desc.TimeBlocks[key]
		if !ok {
			block = &TimeBlock{StartTime: order.start, Orders: make([]OrderDesc, 0, 1)}
			desc.TimeBlocks[key] = block
		}
		block.Orders = append(block.Orders, OrderDesc{ID: order.id, TotalIngredients: order.ingredients})
	}

	return desc
}

// accumulate adds ing into totals, creating a zero entry on first sight. The
// first unit seen for an ingredient is kept.
func accumulate(totals map[uuid.UUID]IngredientDesc, ing IngredientDesc) {
	current, ok := totals[ing.ID]
	if !ok {
		current = IngredientDesc{ID: ing.ID, Name: ing.Name, Unit: ing.Unit}
	}
	current.Quantity += ing.Quantity
	totals[ing.ID] = current
}
