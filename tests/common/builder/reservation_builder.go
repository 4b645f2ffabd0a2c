//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	TableID      uuid.UUID
	UserID       uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	PartySize    int
	Status       reservation.Status
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		TableID:      uuid.New(),
		UserID:       uuid.New(),
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		PartySize:    2,
		Status:       reservation.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain(c clock.Clock) (*reservation.Reservation, error) {
	return reservation.NewPendingReservation(c, r.RestaurantID, r.TableID, r.UserID, r.StartTime, r.EndTime, r.PartySize)
}

func (r *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(r.ID, r.RestaurantID, r.TableID, r.UserID, r.StartTime, r.EndTime, r.PartySize, r.Status, r.CreatedAt)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:            r.ID,
		RestaurantID:  r.RestaurantID,
		TableID:       r.TableID,
		UserID:        r.UserID,
		StartTime:     pgconv.TimeToPgtype(r.StartTime),
		EndTime:       pgconv.TimeToPgtype(r.EndTime),
		NumberOfSeats: int32(r.PartySize),
		Status:        r.Status.String(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		RestaurantID:   r.RestaurantID,
		RestaurantName: "Sakura",
		TableID:        r.TableID,
		TableName:      "Window",
		UserID:         r.UserID,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		NumberOfSeats:  r.PartySize,
		Status:         r.Status.String(),
		CreatedAt:      r.CreatedAt,
		Items:          []*queries.OrderItemView{},
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		PartySize:    r.PartySize,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithRestaurantID(id uuid.UUID) *ReservationBuilder {
	r.RestaurantID = id
	return r
}

func (r *ReservationBuilder) WithTableID(id uuid.UUID) *ReservationBuilder {
	r.TableID = id
	return r
}

func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithStart(start time.Time, length time.Duration) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = start.Add(length)
	return r
}

func (r *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	r.PartySize = n
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}
