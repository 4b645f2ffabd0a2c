package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID uuid.UUID
	TableID      uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	PartySize    int
}

type ReservationCommands interface {
	CreatePending(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, reservationID uuid.UUID, status string, actorID uuid.UUID) error
	AddMenuItem(ctx context.Context, reservationID, menuItemID uuid.UUID, quantity int, actorID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	locker    SlotLocker
	publisher EventPublisher
	clock     clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, locker SlotLocker, publisher EventPublisher, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		locker:    locker,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *reservationUseCaseImpl) CreatePending(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (uuid.UUID, error) {
	res, err := reservation.NewPendingReservation(uc.clock, req.RestaurantID, req.TableID, userID, req.StartTime, req.EndTime, req.PartySize)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := uc.checkTable(ctx, req); err != nil {
		return uuid.Nil, err
	}

	token, err := uc.locker.Acquire(ctx, req.TableID, req.StartTime)
	switch {
	case err != nil:
		// The unique index still rejects double bookings without the hold.
		slog.Warn("slot hold unavailable", "table_id", req.TableID.String(), "error", err.Error())
	case token == "":
		return uuid.Nil, ErrSlotTaken
	default:
		defer func() {
			if releaseErr := uc.locker.Release(context.WithoutCancel(ctx), req.TableID, req.StartTime, token); releaseErr != nil {
				slog.Warn("failed to release slot hold", "table_id", req.TableID.String(), "error", releaseErr.Error())
			}
		}()
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return uuid.Nil, ErrSlotTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, ErrTableNotFound
		default:
			return uuid.Nil, err
		}
	}

	uc.publish(ctx, shared.EventReservationCreated, res)
	return res.ID(), nil
}

func (uc *reservationUseCaseImpl) checkTable(ctx context.Context, req CreateReservationRequest) error {
	reads := uc.uow.CommandReads()

	if _, err := reads.RestaurantByID(ctx, req.RestaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}

	table, err := reads.TableByID(ctx, req.TableID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTableNotFound
		}
		return err
	}
	if table.RestaurantID != req.RestaurantID {
		return ErrTableNotInRestaurant
	}
	if req.PartySize > table.MaxSeats {
		return ErrPartyTooLarge
	}
	return nil
}

func (uc *reservationUseCaseImpl) ChangeStatus(ctx context.Context, reservationID uuid.UUID, status string, actorID uuid.UUID) error {
	next, err := reservation.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	var updated *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.loadOwned(ctx, tx, reservationID, actorID)
		if derr != nil {
			return derr
		}

		if derr = res.ChangeStatus(next); derr != nil {
			if errs.Is(derr, reservation.ErrReservationCancelled) {
				return errs.Wrap(ErrNotModifiable, derr.Error())
			}
			return errs.Mark(derr, errs.ErrValidation)
		}
		if derr = tx.Reservations().UpdateStatus(ctx, res); derr != nil {
			return derr
		}
		updated = res
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, shared.EventReservationStatusChanged, updated)
	return nil
}

func (uc *reservationUseCaseImpl) AddMenuItem(ctx context.Context, reservationID, menuItemID uuid.UUID, quantity int, actorID uuid.UUID) error {
	if err := reservation.ValidateOrderQuantity(quantity); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.loadOwned(ctx, tx, reservationID, actorID)
		if err != nil {
			return err
		}
		if res.Status() == reservation.StatusCancelled {
			return errs.Wrap(ErrNotModifiable, reservation.ErrReservationCancelled.Error())
		}

		item, err := tx.Reads().MenuItemByID(ctx, menuItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}
		if item.RestaurantID != res.RestaurantID() {
			return ErrMenuItemNotInRestaurant
		}

		return tx.Reservations().AddOrderItem(ctx, res.ID(), item.ID, quantity)
	})
}

// loadOwned locks the reservation; someone else's reservation reads as missing.
func (uc *reservationUseCaseImpl) loadOwned(ctx context.Context, tx shared.Tx, reservationID, actorID uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().GetForUpdate(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !res.IsOwnedBy(actorID) {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

func (uc *reservationUseCaseImpl) publish(ctx context.Context, eventType string, res *reservation.Reservation) {
	uc.publisher.Publish(ctx, shared.ReservationEvent{
		Type:          eventType,
		ReservationID: res.ID(),
		RestaurantID:  res.RestaurantID(),
		TableID:       res.TableID(),
		UserID:        res.UserID(),
		Status:        res.Status().String(),
		StartTime:     res.StartTime(),
		OccurredAt:    uc.clock.Now(),
	})
}
