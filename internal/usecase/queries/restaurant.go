package queries

//go:generate mockgen -source=restaurant.go -destination=../../../tests/mock/queries/restaurant.go -package=queriesmock

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/menu"
	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

type RestaurantQueries interface {
	List(ctx context.Context) ([]*RestaurantView, error)
	Get(ctx context.Context, id uuid.UUID) (*RestaurantDetail, error)
	Tables(ctx context.Context, restaurantID uuid.UUID) ([]*TableView, error)
	// PastVisits lists restaurants where userID had a reservation ending by now.
	PastVisits(ctx context.Context, userID uuid.UUID, now time.Time) ([]*RestaurantView, error)
	// CurrentMenus returns the menus active at the wall-clock time of at.
	CurrentMenus(ctx context.Context, restaurantID uuid.UUID, at time.Time) ([]*MenuView, error)
	// AllMenus ignores serving windows.
	AllMenus(ctx context.Context, restaurantID uuid.UUID) ([]*MenuView, error)
	Ingredients(ctx context.Context, restaurantID uuid.UUID) ([]*IngredientView, error)
}

type restaurantQueriesImpl struct {
	restaurants RestaurantStore
	tables      TableStore
	menus       MenuStore
	loc         *time.Location
}

func NewRestaurantQueries(restaurants RestaurantStore, tables TableStore, menus MenuStore, loc *time.Location) RestaurantQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &restaurantQueriesImpl{
		restaurants: restaurants,
		tables:      tables,
		menus:       menus,
		loc:         loc,
	}
}

func (q *restaurantQueriesImpl) List(ctx context.Context) ([]*RestaurantView, error) {
	return q.restaurants.List(ctx)
}

func (q *restaurantQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*RestaurantDetail, error) {
	view, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}

	maxSize, err := q.restaurants.MaxTableSize(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load max table size")
	}

	return &RestaurantDetail{RestaurantView: *view, MaxTableSize: maxSize}, nil
}

func (q *restaurantQueriesImpl) Tables(ctx context.Context, restaurantID uuid.UUID) ([]*TableView, error) {
	if _, err := q.find(ctx, restaurantID); err != nil {
		return nil, err
	}
	return q.tables.ListByRestaurant(ctx, restaurantID)
}

func (q *restaurantQueriesImpl) CurrentMenus(ctx context.Context, restaurantID uuid.UUID, at time.Time) ([]*MenuView, error) {
	if _, err := q.find(ctx, restaurantID); err != nil {
		return nil, err
	}

	views, err := q.menus.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list menus")
	}
	return activeMenus(views, at, q.loc), nil
}

func (q *restaurantQueriesImpl) AllMenus(ctx context.Context, restaurantID uuid.UUID) ([]*MenuView, error) {
	if _, err := q.find(ctx, restaurantID); err != nil {
		return nil, err
	}

	views, err := q.menus.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list menus")
	}
	return views, nil
}

func (q *restaurantQueriesImpl) PastVisits(ctx context.Context, userID uuid.UUID, now time.Time) ([]*RestaurantView, error) {
	views, err := q.restaurants.ListVisitedBy(ctx, userID, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list visited restaurants")
	}
	return views, nil
}

func (q *restaurantQueriesImpl) Ingredients(ctx context.Context, restaurantID uuid.UUID) ([]*IngredientView, error) {
	if _, err := q.find(ctx, restaurantID); err != nil {
		return nil, err
	}
	return q.menus.ListIngredients(ctx, restaurantID)
}

// activeMenus keeps the menus served at the wall-clock time of at in loc.
func activeMenus(views []*MenuView, at time.Time, loc *time.Location) []*MenuView {
	byID := make(map[uuid.UUID]*MenuView, len(views))
	menus := make([]*menu.Menu, 0, len(views))
	for _, v := range views {
		byID[v.ID] = v
		menus = append(menus, menu.ReconstructMenu(v.ID, v.StartMinutes, v.EndMinutes))
	}

	served := menu.ActiveAt(menus, restaurant.TimeOfDay(clock.MinuteOfDay(at, loc)))
	active := make([]*MenuView, 0, len(served))
	for _, m := range served {
		active = append(active, byID[m.ID()])
	}
	return active
}

func (q *restaurantQueriesImpl) find(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	view, err := q.restaurants.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, errs.Wrap(err, "failed to load restaurant")
	}
	return view, nil
}
