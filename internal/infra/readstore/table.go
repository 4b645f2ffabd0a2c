package readstore

import (
	"context"

	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableReadQueries interface {
	ListTablesByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.DiningTables, error)
	ListTablesSeatingParty(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTablesSeatingPartyParams) ([]sqlc.DiningTables, error)
	GetTableByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DiningTables, error)
}

type TableReadStore struct {
	queries TableReadQueries
	db      sqlc.DBTX
}

func NewTableReadStore(queries TableReadQueries, db sqlc.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TableReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*queries.TableView, error) {
	rows, err := r.queries.ListTablesByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	return toTableViews(rows), nil
}

func (r *TableReadStore) ListSeatingParty(ctx context.Context, restaurantID uuid.UUID, partySize int) ([]*queries.TableView, error) {
	rows, err := r.queries.ListTablesSeatingParty(ctx, r.db, sqlc.ListTablesSeatingPartyParams{
		RestaurantID: restaurantID,
		MaxSeats:     int32(partySize),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables seating party", err)
	}
	return toTableViews(rows), nil
}

func (r *TableReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TableView, error) {
	row, err := r.queries.GetTableByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}
	return toTableView(row), nil
}

func toTableViews(rows []sqlc.DiningTables) []*queries.TableView {
	views := make([]*queries.TableView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toTableView(row))
	}
	return views
}

func toTableView(row sqlc.DiningTables) *queries.TableView {
	return &queries.TableView{
		ID:                   row.ID,
		RestaurantID:         row.RestaurantID,
		Name:                 row.Name,
		MaxSeats:             int(row.MaxSeats),
		MaxReservationLength: int(row.MaxReservationLength),
	}
}
