package commands

//go:generate mockgen -source=table.go -destination=../../../tests/mock/commands/table.go -package=commandsmock

import (
	"context"

	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type TableInput struct {
	Name                 string
	MaxSeats             int
	MaxReservationLength int
}

type TableCommands interface {
	// BulkUpdate replaces every table of the restaurant in one transaction.
	BulkUpdate(ctx context.Context, restaurantID uuid.UUID, inputs []TableInput) ([]uuid.UUID, error)
	Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error
}

type tableUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewTableUseCase(uow shared.UnitOfWork) TableCommands {
	return &tableUseCaseImpl{uow: uow}
}

func (uc *tableUseCaseImpl) BulkUpdate(ctx context.Context, restaurantID uuid.UUID, inputs []TableInput) ([]uuid.UUID, error) {
	tables := make([]*restaurant.Table, 0, len(inputs))
	for i, in := range inputs {
		t, err := restaurant.NewTable(restaurantID, in.Name, in.MaxSeats, in.MaxReservationLength)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "tables[%d]", i), errs.ErrValidation)
		}
		tables = append(tables, t)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RestaurantByID(ctx, restaurantID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}

		if _, err := tx.Tables().DeleteByRestaurant(ctx, restaurantID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrTablesInUse
			}
			return err
		}

		for _, t := range tables {
			if err := tx.Tables().Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID())
	}
	return ids, nil
}

func (uc *tableUseCaseImpl) Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Tables().Delete(ctx, restaurantID, tableID)
		switch {
		case err == nil:
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			return ErrTableNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrTablesInUse
		default:
			return err
		}
	})
}
