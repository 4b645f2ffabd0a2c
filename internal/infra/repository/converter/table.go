package converter

import (
	"fmt"
	"math"

	"restaurant-reservations/internal/domain/restaurant"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
)

func TableToInfra(t *restaurant.Table) sqlc.CreateTableParams {
	if t.MaxSeats() > math.MaxInt32 || t.MaxReservationLength() > math.MaxInt32 {
		panic(fmt.Sprintf("table %q out of int32 range", t.Name()))
	}

	return sqlc.CreateTableParams{
		ID:                   t.ID(),
		RestaurantID:         t.RestaurantID(),
		Name:                 t.Name(),
		MaxSeats:             int32(t.MaxSeats()),
		MaxReservationLength: int32(t.MaxReservationLength()),
	}
}
