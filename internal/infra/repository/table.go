package repository

import (
	"context"

	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TableWriteQueries interface {
	CreateTable(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTableParams) error
	DeleteTable(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteTableParams) (int64, error)
	DeleteTablesByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) (int64, error)
}

type TableRepository struct {
	queries TableWriteQueries
	db      sqlc.DBTX
}

func NewTableRepository(queries TableWriteQueries, db sqlc.DBTX) *TableRepository {
	return &TableRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TableRepository) Create(ctx context.Context, t *restaurant.Table) error {
	if err := r.queries.CreateTable(ctx, r.db, converter.TableToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to create table", err)
	}
	return nil
}

func (r *TableRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteTablesByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete restaurant tables", err)
	}
	return n, nil
}

// Delete removes the table only when it belongs to restaurantID.
func (r *TableRepository) Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error {
	n, err := r.queries.DeleteTable(ctx, r.db, sqlc.DeleteTableParams{ID: tableID, RestaurantID: restaurantID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete table", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}
