// Package availability computes bookable time slots for a restaurant day.
//
// The engine is pure: callers load tables, opening hours and the blocking
// reservations of the day, convert reservation starts to wall-clock minutes,
// and hand everything to Compute.
package availability

import (
	"errors"
	"sort"

	"restaurant-reservations/internal/domain/restaurant"

	"github.com/google/uuid"
)

var ErrInvalidPartySize = errors.New("party size must be at least 1")

// TableSpec is the subset of a table the engine needs.
type TableSpec struct {
	ID                uuid.UUID
	MaxSeats          int
	ReservationLength int // minutes
}

// Booking marks a table as taken for the slot starting at StartMinute.
type Booking struct {
	TableID     uuid.UUID
	StartMinute int
}

type Request struct {
	Hours     restaurant.Hours
	PartySize int
	Tables    []TableSpec
	Bookings  []Booking
}

type Slot struct {
	Start     restaurant.TimeOfDay
	MaxSeats  int
	Available bool
}

// Time renders the slot start as HH:MM:SS.
func (s Slot) Time() string {
	return s.Start.String()
}

type bookingKey struct {
	tableID uuid.UUID
	minute  int
}

// Compute walks every table that seats the party, smallest first, over its
// own reservation-length grid and merges the candidate slots by start time.
// Result order is the order in which each start time was first produced.
func Compute(req Request) ([]Slot, error) {
	if req.PartySize < 1 {
		return nil, ErrInvalidPartySize
	}

	tables := make([]TableSpec, 0, len(req.Tables))
	for _, t := range req.Tables {
		if t.MaxSeats >= req.PartySize {
			tables = append(tables, t)
		}
	}
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].MaxSeats < tables[j].MaxSeats
	})

	booked := make(map[bookingKey]struct{}, len(req.Bookings))
	for _, b := range req.Bookings {
		booked[bookingKey{tableID: b.TableID, minute: b.StartMinute}] = struct{}{}
	}

	slots := make([]Slot, 0)
	index := make(map[restaurant.TimeOfDay]int)

	for _, table := range tables {
		starts, err := req.Hours.SlotStarts(table.ReservationLength)
		if err != nil {
			return nil, err
		}
		for _, start := range starts {
			_, reserved := booked[bookingKey{tableID: table.ID, minute: start.Minutes()}]
			candidate := Slot{
				Start:     start,
				MaxSeats:  table.MaxSeats,
				Available: !reserved,
			}

			i, exists := index[start]
			if !exists {
				index[start] = len(slots)
				slots = append(slots, candidate)
				continue
			}
			if prefer(slots[i], candidate) {
				slots[i] = candidate
			}
		}
	}

	return slots, nil
}

// prefer decides whether candidate replaces the existing entry for the same
// start time. An available entry is kept; an unavailable one is replaced by
// the first available candidate, which is the smallest such table since
// tables are visited in seat order.
func prefer(existing, candidate Slot) bool {
	return !existing.Available && candidate.Available
}
