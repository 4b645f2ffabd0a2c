package readstore

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/kitchen"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type KitchenReadQueries interface {
	ListIngredientLines(ctx context.Context, db sqlc.DBTX, arg sqlc.ListIngredientLinesParams) ([]sqlc.ListIngredientLinesRow, error)
	ListDishOrdersOnDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDishOrdersOnDayParams) ([]sqlc.ListDishOrdersOnDayRow, error)
	ListMenuItemNames(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]string, error)
}

type KitchenReadStore struct {
	queries KitchenReadQueries
	db      sqlc.DBTX
}

func NewKitchenReadStore(queries KitchenReadQueries, db sqlc.DBTX) *KitchenReadStore {
	return &KitchenReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *KitchenReadStore) IngredientLines(ctx context.Context, restaurantID uuid.UUID, start, end time.Time, confirmedOnly bool) ([]kitchen.IngredientLine, error) {
	rows, err := r.queries.ListIngredientLines(ctx, r.db, sqlc.ListIngredientLinesParams{
		RestaurantID:  restaurantID,
		WindowStart:   pgconv.TimeToPgtype(start),
		WindowEnd:     pgconv.TimeToPgtype(end),
		ConfirmedOnly: confirmedOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredient lines", err)
	}

	lines := make([]kitchen.IngredientLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, kitchen.IngredientLine{
			ReservationID:    row.ReservationID,
			ReservationStart: pgconv.TimeFromPgtype(row.ReservationStart),
			IngredientID:     row.IngredientID,
			IngredientName:   row.IngredientName,
			Quantity:         row.Quantity,
			Unit:             row.Unit,
		})
	}
	return lines, nil
}

func (r *KitchenReadStore) DishOrders(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]queries.DishOrder, error) {
	rows, err := r.queries.ListDishOrdersOnDay(ctx, r.db, sqlc.ListDishOrdersOnDayParams{
		RestaurantID: restaurantID,
		DayStart:     pgconv.TimeToPgtype(from),
		DayEnd:       pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dish orders", err)
	}

	orders := make([]queries.DishOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, queries.DishOrder{
			Name:      row.Name,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			Quantity:  int(row.Quantity),
		})
	}
	return orders, nil
}

func (r *KitchenReadStore) MenuItemNames(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	names, err := r.queries.ListMenuItemNames(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu item names", err)
	}
	return names, nil
}
