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

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListOrderItemsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListOrderItemsByReservationRow, error)
	ListReservationsOnDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsOnDayParams) ([]sqlc.ListReservationsOnDayRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	items, err := r.queries.ListOrderItemsByReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.ReservationView{
		ID:             row.ID,
		RestaurantID:   row.RestaurantID,
		RestaurantName: row.RestaurantName,
		TableID:        row.TableID,
		TableName:      row.TableName,
		UserID:         row.UserID,
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		NumberOfSeats:  int(row.NumberOfSeats),
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		Items:          make([]*queries.OrderItemView, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, &queries.OrderItemView{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   int(item.Quantity),
		})
	}
	return view, nil
}

func (r *ReservationReadStore) ListOnDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*queries.DayReservation, error) {
	rows, err := r.queries.ListReservationsOnDay(ctx, r.db, sqlc.ListReservationsOnDayParams{
		RestaurantID: restaurantID,
		DayStart:     pgconv.TimeToPgtype(from),
		DayEnd:       pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations on day", err)
	}

	result := make([]*queries.DayReservation, 0, len(rows))
	for _, row := range rows {
		result = append(result, &queries.DayReservation{
			ID:            row.ID,
			TableID:       row.TableID,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			NumberOfSeats: int(row.NumberOfSeats),
			Status:        row.Status,
		})
	}
	return result, nil
}
