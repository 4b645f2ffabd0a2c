package repository

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	UpsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertOrderItemParams) error
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with KindDuplicateKey when the table already holds a
// non-cancelled reservation at the same start.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// GetForUpdate loads the reservation and locks its row until the transaction ends.
func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ID:     res.ID(),
		Status: res.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// AddOrderItem inserts the order line or adds quantity to an existing one.
func (r *ReservationRepository) AddOrderItem(ctx context.Context, reservationID, menuItemID uuid.UUID, quantity int) error {
	err := r.queries.UpsertOrderItem(ctx, r.db, sqlc.UpsertOrderItemParams{
		ReservationID: reservationID,
		MenuItemID:    menuItemID,
		Quantity:      int32(quantity),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to add order item", err)
	}
	return nil
}
