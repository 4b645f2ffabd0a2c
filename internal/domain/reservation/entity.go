package reservation

import (
	"errors"
	"time"

	"restaurant-reservations/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot         = errors.New("reservation start must be before its end")
	ErrStartInPast             = errors.New("reservation start cannot be in the past")
	ErrInvalidPartySize        = errors.New("number of seats must be at least 1")
	ErrInvalidStatusTransition = errors.New("reservation status can only change to UNPAID, CONFIRMED or CANCELLED")
	ErrReservationCancelled    = errors.New("reservation is already cancelled")
	ErrInvalidQuantity         = errors.New("order quantity must be at least 1")
)

type Reservation struct {
	id            uuid.UUID
	restaurantID  uuid.UUID
	tableID       uuid.UUID
	userID        uuid.UUID
	startTime     time.Time
	endTime       time.Time
	numberOfSeats int
	status        Status
	createdAt     time.Time
}

// NewPendingReservation creates a reservation awaiting payment or confirmation.
func NewPendingReservation(
	c clock.Clock,
	restaurantID, tableID, userID uuid.UUID,
	start, end time.Time,
	numberOfSeats int,
) (*Reservation, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeSlot
	}
	now := c.Now()
	if start.Before(now) {
		return nil, ErrStartInPast
	}
	if numberOfSeats < 1 {
		return nil, ErrInvalidPartySize
	}

	return &Reservation{
		id:            uuid.New(),
		restaurantID:  restaurantID,
		tableID:       tableID,
		userID:        userID,
		startTime:     start,
		endTime:       end,
		numberOfSeats: numberOfSeats,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructReservation(
	id, restaurantID, tableID, userID uuid.UUID,
	start, end time.Time,
	numberOfSeats int,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		restaurantID:  restaurantID,
		tableID:       tableID,
		userID:        userID,
		startTime:     start,
		endTime:       end,
		numberOfSeats: numberOfSeats,
		status:        status,
		createdAt:     createdAt,
	}
}

// ChangeStatus moves the reservation out of PENDING. CANCELLED is terminal.
func (r *Reservation) ChangeStatus(next Status) error {
	switch next {
	case StatusUnpaid, StatusConfirmed, StatusCancelled:
	default:
		return ErrInvalidStatusTransition
	}
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	r.status = next
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) TableID() uuid.UUID      { return r.tableID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) StartTime() time.Time    { return r.startTime }
func (r *Reservation) EndTime() time.Time      { return r.endTime }
func (r *Reservation) NumberOfSeats() int      { return r.numberOfSeats }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }

func ValidateOrderQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}
