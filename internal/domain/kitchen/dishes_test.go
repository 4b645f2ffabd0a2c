//go:build unit

package kitchen_test

import (
	"testing"

	"restaurant-reservations/internal/domain/kitchen"
	"restaurant-reservations/internal/domain/restaurant"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lunchHours(t *testing.T) restaurant.Hours {
	t.Helper()
	h, err := restaurant.NewHours(660, 780) // 11:00-13:00
	require.NoError(t, err)
	return h
}

func TestDishSlotCount(t *testing.T) {
	assert.Equal(t, 5, kitchen.DishSlotCount(lunchHours(t)))

	odd, err := restaurant.NewHours(660, 705) // 45 minutes
	require.NoError(t, err)
	assert.Equal(t, 2, kitchen.DishSlotCount(odd))
}

func TestDishesOverTime(t *testing.T) {
	h := lunchHours(t)

	got, err := kitchen.DishesOverTime(h, []string{"Margherita", "Tiramisu"}, []kitchen.DishLine{
		{Name: "Margherita", StartMinute: 660, Quantity: 2},
		{Name: "Margherita", StartMinute: 689, Quantity: 1},
		{Name: "Margherita", StartMinute: 750, Quantity: 3},
		{Name: "Tiramisu", StartMinute: 780, Quantity: 4},
		{Name: "Off-menu Special", StartMinute: 720, Quantity: 1},
	})
	require.NoError(t, err)

	want := map[string][]int{
		"Margherita":       {3, 0, 0, 3, 0},
		"Tiramisu":         {0, 0, 0, 0, 4},
		"Off-menu Special": {0, 0, 1, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestDishesOverTime_ZeroSeries(t *testing.T) {
	got, err := kitchen.DishesOverTime(lunchHours(t), []string{"Soup"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"Soup": {0, 0, 0, 0, 0}}, got)
}

func TestDishesOverTime_OutOfRangeAborts(t *testing.T) {
	h := lunchHours(t)

	_, err := kitchen.DishesOverTime(h, nil, []kitchen.DishLine{{Name: "Soup", StartMinute: 600, Quantity: 1}})
	assert.ErrorIs(t, err, kitchen.ErrSlotOutOfRange)

	_, err = kitchen.DishesOverTime(h, nil, []kitchen.DishLine{{Name: "Soup", StartMinute: 810, Quantity: 1}})
	assert.ErrorIs(t, err, kitchen.ErrSlotOutOfRange)
}

func TestNewCapacityInfo(t *testing.T) {
	h := lunchHours(t)
	tables := []*restaurant.Table{
		restaurant.ReconstructTable(uuid.New(), uuid.New(), "A", 4, 60),
		restaurant.ReconstructTable(uuid.New(), uuid.New(), "B", 2, 30),
	}

	info := kitchen.NewCapacityInfo(h, tables, []int{2, 4, 3})
	assert.Equal(t, kitchen.CapacityInfo{SeatsFilled: 9, Capacity: 16}, info)
}
