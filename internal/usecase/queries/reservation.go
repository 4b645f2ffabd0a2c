package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	// GetByID only resolves reservations owned by actor.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error)
	// Ticket renders the reservation reference as a PNG QR code.
	Ticket(ctx context.Context, actor uuid.UUID, id uuid.UUID) ([]byte, error)
	// Menus returns the menus of the reservation's restaurant served at the
	// wall-clock time of at, with the quantities already ordered.
	Menus(ctx context.Context, actor uuid.UUID, id uuid.UUID, at time.Time) ([]*ReservationMenuView, error)
}

type reservationQueriesImpl struct {
	store   ReservationStore
	menus   MenuStore
	encoder TicketEncoder
	loc     *time.Location
}

func NewReservationQueries(store ReservationStore, menus MenuStore, encoder TicketEncoder, loc *time.Location) ReservationQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &reservationQueriesImpl{store: store, menus: menus, encoder: encoder, loc: loc}
}

func TicketContent(id uuid.UUID) string {
	return "reservation:" + id.String()
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}

	// Someone else's reservation is reported as missing.
	if view.UserID != actor {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) Ticket(ctx context.Context, actor uuid.UUID, id uuid.UUID) ([]byte, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if view.Status == "CANCELLED" {
		return nil, ErrTicketUnavailable
	}

	png, err := q.encoder.Encode(TicketContent(view.ID))
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode ticket")
	}
	return png, nil
}

func (q *reservationQueriesImpl) Menus(ctx context.Context, actor uuid.UUID, id uuid.UUID, at time.Time) ([]*ReservationMenuView, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	all, err := q.menus.ListByRestaurant(ctx, view.RestaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list menus")
	}

	ordered := make(map[uuid.UUID]int, len(view.Items))
	for _, item := range view.Items {
		ordered[item.MenuItemID] = item.Quantity
	}

	served := activeMenus(all, at, q.loc)
	result := make([]*ReservationMenuView, 0, len(served))
	for _, m := range served {
		quantities := make(map[uuid.UUID]int)
		for _, item := range m.Items {
			if n, ok := ordered[item.ID]; ok {
				quantities[item.ID] = n
			}
		}
		result = append(result, &ReservationMenuView{MenuView: *m, Ordered: quantities})
	}
	return result, nil
}
