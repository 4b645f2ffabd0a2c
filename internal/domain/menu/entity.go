package menu

import (
	"restaurant-reservations/internal/domain/restaurant"

	"github.com/google/uuid"
)

// Menu is the serving window of a named menu.
type Menu struct {
	id        uuid.UUID
	startTime *restaurant.TimeOfDay
	endTime   *restaurant.TimeOfDay
}

func ReconstructMenu(id uuid.UUID, startMinutes, endMinutes *int) *Menu {
	m := &Menu{id: id}
	if startMinutes != nil {
		t := restaurant.TimeOfDay(*startMinutes)
		m.startTime = &t
	}
	if endMinutes != nil {
		t := restaurant.TimeOfDay(*endMinutes)
		m.endTime = &t
	}
	return m
}

func (m *Menu) ID() uuid.UUID { return m.id }

// IsActiveAt is true inside the inclusive [start, end] window, or always when
// the menu has no window at all. A half-open window is never active.
func (m *Menu) IsActiveAt(t restaurant.TimeOfDay) bool {
	if m.startTime == nil && m.endTime == nil {
		return true
	}
	if m.startTime == nil || m.endTime == nil {
		return false
	}
	return *m.startTime <= t && t <= *m.endTime
}

// ActiveAt keeps the menus served at t, preserving order.
func ActiveAt(menus []*Menu, t restaurant.TimeOfDay) []*Menu {
	active := make([]*Menu, 0, len(menus))
	for _, m := range menus {
		if m.IsActiveAt(t) {
			active = append(active, m)
		}
	}
	return active
}
