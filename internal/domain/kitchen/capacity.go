package kitchen

import "restaurant-reservations/internal/domain/restaurant"

type CapacityInfo struct {
	SeatsFilled int
	Capacity    int
}

func NewCapacityInfo(h restaurant.Hours, tables []*restaurant.Table, partySizes []int) CapacityInfo {
	filled := 0
	for _, n := range partySizes {
		filled += n
	}
	return CapacityInfo{
		SeatsFilled: filled,
		Capacity:    restaurant.TotalCapacity(h, tables),
	}
}
