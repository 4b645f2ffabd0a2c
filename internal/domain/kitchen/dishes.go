package kitchen

import (
	"errors"
	"fmt"

	"restaurant-reservations/internal/domain/restaurant"
)

// DishSlotMinutes is the fixed bucket width of the dishes-over-time chart.
const DishSlotMinutes = 30

var ErrSlotOutOfRange = errors.New("reservation starts outside opening hours")

// DishLine is one order item of a confirmed reservation on the day.
type DishLine struct {
	Name        string
	StartMinute int
	Quantity    int
}

// DishSlotCount is the length of every dishes-over-time series.
func DishSlotCount(h restaurant.Hours) int {
	return h.Span()/DishSlotMinutes + 1
}

// DishesOverTime sums ordered quantities per dish into 30-minute buckets
// starting at opening time. Every name in menuItems gets a zero series even
// without orders.
func DishesOverTime(h restaurant.Hours, menuItems []string, lines []DishLine) (map[string][]int, error) {
	slots := DishSlotCount(h)
	series := make(map[string][]int, len(menuItems))
	for _, name := range menuItems {
		series[name] = make([]int, slots)
	}

	open := h.Open().Minutes()
	for _, line := range lines {
		offset := line.StartMinute - open
		if offset < 0 || offset/DishSlotMinutes >= slots {
			return nil, fmt.Errorf("%w: %q at minute %d", ErrSlotOutOfRange, line.Name, line.StartMinute)
		}
		s, ok := series[line.Name]
		if !ok {
			s = make([]int, slots)
			series[line.Name] = s
		}
		s[offset/DishSlotMinutes] += line.Quantity
	}

	return series, nil
}
