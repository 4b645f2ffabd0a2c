package restaurant

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTableName           = errors.New("table name must not be empty")
	ErrInvalidMaxSeats          = errors.New("max seats must be positive")
	ErrInvalidReservationLength = errors.New("max reservation length must be positive")
)

type Restaurant struct {
	id        uuid.UUID
	name      string
	openTime  *TimeOfDay
	closeTime *TimeOfDay
}

func ReconstructRestaurant(id uuid.UUID, name string, openMinutes, closeMinutes *int) *Restaurant {
	r := &Restaurant{id: id, name: name}
	if openMinutes != nil {
		t := TimeOfDay(*openMinutes)
		r.openTime = &t
	}
	if closeMinutes != nil {
		t := TimeOfDay(*closeMinutes)
		r.closeTime = &t
	}
	return r
}

func (r *Restaurant) ID() uuid.UUID         { return r.id }
func (r *Restaurant) Name() string          { return r.name }
func (r *Restaurant) OpenTime() *TimeOfDay  { return r.openTime }
func (r *Restaurant) CloseTime() *TimeOfDay { return r.closeTime }

// Hours fails with ErrHoursNotConfigured when either bound is missing.
func (r *Restaurant) Hours() (Hours, error) {
	if r.openTime == nil || r.closeTime == nil {
		return Hours{}, ErrHoursNotConfigured
	}
	return NewHours(*r.openTime, *r.closeTime)
}

type Table struct {
	id                   uuid.UUID
	restaurantID         uuid.UUID
	name                 string
	maxSeats             int
	maxReservationLength int
}

func NewTable(restaurantID uuid.UUID, name string, maxSeats, maxReservationLength int) (*Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTableName
	}
	if maxSeats <= 0 {
		return nil, ErrInvalidMaxSeats
	}
	if maxReservationLength <= 0 {
		return nil, ErrInvalidReservationLength
	}
	return &Table{
		id:                   uuid.New(),
		restaurantID:         restaurantID,
		name:                 name,
		maxSeats:             maxSeats,
		maxReservationLength: maxReservationLength,
	}, nil
}

func ReconstructTable(id, restaurantID uuid.UUID, name string, maxSeats, maxReservationLength int) *Table {
	return &Table{
		id:                   id,
		restaurantID:         restaurantID,
		name:                 name,
		maxSeats:             maxSeats,
		maxReservationLength: maxReservationLength,
	}
}

func (t *Table) ID() uuid.UUID               { return t.id }
func (t *Table) RestaurantID() uuid.UUID     { return t.restaurantID }
func (t *Table) Name() string                { return t.name }
func (t *Table) MaxSeats() int               { return t.maxSeats }
func (t *Table) MaxReservationLength() int   { return t.maxReservationLength }
func (t *Table) Seats(partySize int) bool    { return partySize >= 1 && partySize <= t.maxSeats }
func (t *Table) BelongsTo(id uuid.UUID) bool { return t.restaurantID == id }

// Capacity is the number of seatings the table offers in a day times its seats.
func (t *Table) Capacity(h Hours) int {
	if t.maxReservationLength <= 0 {
		return 0
	}
	return h.Span() / t.maxReservationLength * t.maxSeats
}

func TotalCapacity(h Hours, tables []*Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity(h)
	}
	return total
}
