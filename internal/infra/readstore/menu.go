package readstore

import (
	"context"

	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuReadQueries interface {
	ListMenusByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.Menus, error)
	ListMenuItemsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.ListMenuItemsByRestaurantRow, error)
	ListIngredientsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.Ingredients, error)
	GetMenuItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error)
}

type MenuReadStore struct {
	queries MenuReadQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuReadQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByRestaurant returns every menu with its items attached.
func (r *MenuReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*queries.MenuView, error) {
	menus, err := r.queries.ListMenusByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}
	items, err := r.queries.ListMenuItemsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}

	views := make([]*queries.MenuView, 0, len(menus))
	byID := make(map[uuid.UUID]*queries.MenuView, len(menus))
	for _, m := range menus {
		v := &queries.MenuView{
			ID:           m.ID,
			Name:         m.Name,
			StartMinutes: pgconv.MinutesPtrFromPgTime(m.StartTime),
			EndMinutes:   pgconv.MinutesPtrFromPgTime(m.EndTime),
			Items:        []*queries.MenuItemView{},
		}
		views = append(views, v)
		byID[m.ID] = v
	}

	for _, item := range items {
		v, ok := byID[item.MenuID]
		if !ok {
			continue
		}
		v.Items = append(v.Items, &queries.MenuItemView{
			ID:          item.ID,
			Name:        item.Name,
			Description: pgconv.StringPtrFromPgtype(item.Description),
			Price:       item.Price,
		})
	}
	return views, nil
}

func (r *MenuReadStore) ListIngredients(ctx context.Context, restaurantID uuid.UUID) ([]*queries.IngredientView, error) {
	rows, err := r.queries.ListIngredientsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}

	views := make([]*queries.IngredientView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.IngredientView{ID: row.ID, Name: row.Name})
	}
	return views, nil
}

// MenuItemByID carries the owning restaurant for cross-restaurant checks.
func (r *MenuReadStore) MenuItemByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemDetail, error) {
	row, err := r.queries.GetMenuItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}
	return &queries.MenuItemDetail{
		MenuItemView: queries.MenuItemView{
			ID:          row.ID,
			Name:        row.Name,
			Description: pgconv.StringPtrFromPgtype(row.Description),
			Price:       row.Price,
		},
		RestaurantID: row.RestaurantID,
	}, nil
}
