//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservations/internal/domain/restaurant"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type TableBuilder struct {
	ID                   uuid.UUID
	RestaurantID         uuid.UUID
	Name                 string
	MaxSeats             int
	MaxReservationLength int
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:                   uuid.New(),
		RestaurantID:         uuid.New(),
		Name:                 "Window",
		MaxSeats:             4,
		MaxReservationLength: 60,
	}
}

func (t *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(t)
	return t
}

// Build methods
func (t *TableBuilder) BuildDomain() (*restaurant.Table, error) {
	return restaurant.NewTable(t.RestaurantID, t.Name, t.MaxSeats, t.MaxReservationLength)
}

func (t *TableBuilder) BuildInfra() sqlc.DiningTables {
	return sqlc.DiningTables{
		ID:                   t.ID,
		RestaurantID:         t.RestaurantID,
		Name:                 t.Name,
		MaxSeats:             int32(t.MaxSeats),
		MaxReservationLength: int32(t.MaxReservationLength),
		CreatedAt:            pgconv.TimeToPgtype(time.Now()),
	}
}

func (t *TableBuilder) BuildView() *queries.TableView {
	return &queries.TableView{
		ID:                   t.ID,
		RestaurantID:         t.RestaurantID,
		Name:                 t.Name,
		MaxSeats:             t.MaxSeats,
		MaxReservationLength: t.MaxReservationLength,
	}
}

func (t *TableBuilder) BuildSnapshot() *shared.TableSnapshot {
	return &shared.TableSnapshot{
		ID:                   t.ID,
		RestaurantID:         t.RestaurantID,
		Name:                 t.Name,
		MaxSeats:             t.MaxSeats,
		MaxReservationLength: t.MaxReservationLength,
	}
}

func (t *TableBuilder) BuildRequestDTO() reqdto.TableInput {
	return reqdto.TableInput{
		Name:                 t.Name,
		MaxSeats:             t.MaxSeats,
		MaxReservationLength: t.MaxReservationLength,
	}
}

// Fluent builder methods
func (t *TableBuilder) WithRestaurantID(id uuid.UUID) *TableBuilder {
	t.RestaurantID = id
	return t
}

func (t *TableBuilder) WithName(name string) *TableBuilder {
	t.Name = name
	return t
}

func (t *TableBuilder) WithMaxSeats(seats int) *TableBuilder {
	t.MaxSeats = seats
	return t
}

func (t *TableBuilder) WithMaxReservationLength(minutes int) *TableBuilder {
	t.MaxReservationLength = minutes
	return t
}
