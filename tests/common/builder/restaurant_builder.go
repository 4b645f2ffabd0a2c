//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservations/internal/domain/restaurant"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID           uuid.UUID
	Name         string
	Description  *string
	OpenMinutes  *int
	CloseMinutes *int
	CreatedAt    time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	openAt, closeAt := 11*60, 22*60
	description := "Neighbourhood izakaya"
	return &RestaurantBuilder{
		ID:           uuid.New(),
		Name:         "Sakura",
		Description:  &description,
		OpenMinutes:  &openAt,
		CloseMinutes: &closeAt,
		CreatedAt:    time.Now(),
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RestaurantBuilder) BuildDomain() *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(r.ID, r.Name, r.OpenMinutes, r.CloseMinutes)
}

func (r *RestaurantBuilder) BuildInfra() sqlc.Restaurants {
	return sqlc.Restaurants{
		ID:          r.ID,
		Name:        r.Name,
		Description: pgconv.StringPtrToPgtype(r.Description),
		OpenTime:    pgconv.MinutesPtrToPgTime(r.OpenMinutes),
		CloseTime:   pgconv.MinutesPtrToPgTime(r.CloseMinutes),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		OpenMinutes:  r.OpenMinutes,
		CloseMinutes: r.CloseMinutes,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *RestaurantBuilder) BuildDetail(maxTableSize int) *queries.RestaurantDetail {
	return &queries.RestaurantDetail{RestaurantView: *r.BuildView(), MaxTableSize: maxTableSize}
}

func (r *RestaurantBuilder) BuildSnapshot() *shared.RestaurantSnapshot {
	return &shared.RestaurantSnapshot{
		ID:           r.ID,
		Name:         r.Name,
		OpenMinutes:  r.OpenMinutes,
		CloseMinutes: r.CloseMinutes,
	}
}

// Fluent builder methods
func (r *RestaurantBuilder) WithID(id uuid.UUID) *RestaurantBuilder {
	r.ID = id
	return r
}

func (r *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	r.Name = name
	return r
}

func (r *RestaurantBuilder) WithHours(openMinutes, closeMinutes int) *RestaurantBuilder {
	r.OpenMinutes = &openMinutes
	r.CloseMinutes = &closeMinutes
	return r
}

func (r *RestaurantBuilder) WithoutHours() *RestaurantBuilder {
	r.OpenMinutes = nil
	r.CloseMinutes = nil
	return r
}
