package readstore

import (
	"context"
	"time"

	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantReadQueries interface {
	ListRestaurants(ctx context.Context, db sqlc.DBTX) ([]sqlc.Restaurants, error)
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Restaurants, error)
	GetMaxTableSize(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) (int32, error)
	ListRestaurantsVisitedByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRestaurantsVisitedByUserParams) ([]sqlc.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantReadQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantReadQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) List(ctx context.Context) ([]*queries.RestaurantView, error) {
	rows, err := r.queries.ListRestaurants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}

	views := make([]*queries.RestaurantView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRestaurantView(row))
	}
	return views, nil
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}
	return toRestaurantView(row), nil
}

// MaxTableSize is 0 for a restaurant without tables.
func (r *RestaurantReadStore) MaxTableSize(ctx context.Context, id uuid.UUID) (int, error) {
	size, err := r.queries.GetMaxTableSize(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get max table size", err)
	}
	return int(size), nil
}

func (r *RestaurantReadStore) ListVisitedBy(ctx context.Context, userID uuid.UUID, before time.Time) ([]*queries.RestaurantView, error) {
	rows, err := r.queries.ListRestaurantsVisitedByUser(ctx, r.db, sqlc.ListRestaurantsVisitedByUserParams{
		UserID: userID,
		Before: pgconv.TimeToPgtype(before),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visited restaurants", err)
	}

	views := make([]*queries.RestaurantView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRestaurantView(row))
	}
	return views, nil
}

func toRestaurantView(row sqlc.Restaurants) *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:           row.ID,
		Name:         row.Name,
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		OpenMinutes:  pgconv.MinutesPtrFromPgTime(row.OpenTime),
		CloseMinutes: pgconv.MinutesPtrFromPgTime(row.CloseTime),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
