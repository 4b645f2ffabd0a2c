package converter

import (
	"fmt"
	"math"

	"restaurant-reservations/internal/domain/reservation"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	seats := res.NumberOfSeats()
	if seats > math.MaxInt32 {
		panic(fmt.Sprintf("number of seats out of int32 range: %d", seats))
	}

	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		RestaurantID:  res.RestaurantID(),
		TableID:       res.TableID(),
		UserID:        res.UserID(),
		StartTime:     pgconv.TimeToPgtype(res.StartTime()),
		EndTime:       pgconv.TimeToPgtype(res.EndTime()),
		NumberOfSeats: int32(seats),
		Status:        res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.RestaurantID,
		row.TableID,
		row.UserID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		int(row.NumberOfSeats),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
