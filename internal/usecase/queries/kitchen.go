package queries

//go:generate mockgen -source=kitchen.go -destination=../../../tests/mock/queries/kitchen.go -package=queriesmock

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/kitchen"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	// Defaults for an open-ended ingredient report window.
	EarliestReportTime = time.Unix(0, 0).UTC()
	LatestReportTime   = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

type IngredientReportParams struct {
	RestaurantID  uuid.UUID
	StartTime     *time.Time
	EndTime       *time.Time
	ConfirmedOnly bool
}

type KitchenQueries interface {
	IngredientReport(ctx context.Context, params IngredientReportParams) (*kitchen.ReservationDesc, error)
	DishesOverTime(ctx context.Context, restaurantID uuid.UUID, date time.Time) (map[string][]int, error)
	CapacityInfo(ctx context.Context, restaurantID uuid.UUID, date time.Time) (*kitchen.CapacityInfo, error)
}

type kitchenQueriesImpl struct {
	restaurants  RestaurantStore
	tables       TableStore
	reservations ReservationStore
	kitchen      KitchenStore
	loc          *time.Location
}

func NewKitchenQueries(restaurants RestaurantStore, tables TableStore, reservations ReservationStore, kitchenStore KitchenStore, loc *time.Location) KitchenQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &kitchenQueriesImpl{
		restaurants:  restaurants,
		tables:       tables,
		reservations: reservations,
		kitchen:      kitchenStore,
		loc:          loc,
	}
}

func (q *kitchenQueriesImpl) IngredientReport(ctx context.Context, params IngredientReportParams) (*kitchen.ReservationDesc, error) {
	start, end := patch.Bounds(params.StartTime, params.EndTime, EarliestReportTime, LatestReportTime)
	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	if _, err := q.restaurants.FindByID(ctx, params.RestaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, errs.Wrap(err, "failed to load restaurant")
	}

	lines, err := q.kitchen.IngredientLines(ctx, params.RestaurantID, start, end, params.ConfirmedOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load ingredient lines")
	}

	desc := kitchen.AggregateIngredients(lines)
	return &desc, nil
}

func (q *kitchenQueriesImpl) DishesOverTime(ctx context.Context, restaurantID uuid.UUID, date time.Time) (map[string][]int, error) {
	hours, err := loadHours(ctx, q.restaurants, restaurantID)
	if err != nil {
		return nil, err
	}

	names, err := q.kitchen.MenuItemNames(ctx, restaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load menu items")
	}

	from, to := clock.DayBounds(date, q.loc)
	orders, err := q.kitchen.DishOrders(ctx, restaurantID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load dish orders")
	}

	lines := make([]kitchen.DishLine, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, kitchen.DishLine{
			Name:        o.Name,
			StartMinute: clock.MinuteOfDay(o.StartTime, q.loc),
			Quantity:    o.Quantity,
		})
	}

	series, err := kitchen.DishesOverTime(hours, names, lines)
	if err != nil {
		return nil, errs.Wrap(ErrMalformedOrderData, err.Error())
	}
	return series, nil
}

func (q *kitchenQueriesImpl) CapacityInfo(ctx context.Context, restaurantID uuid.UUID, date time.Time) (*kitchen.CapacityInfo, error) {
	hours, err := loadHours(ctx, q.restaurants, restaurantID)
	if err != nil {
		return nil, err
	}

	tableViews, err := q.tables.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list tables")
	}
	tables := make([]*restaurant.Table, 0, len(tableViews))
	for _, t := range tableViews {
		tables = append(tables, restaurant.ReconstructTable(t.ID, t.RestaurantID, t.Name, t.MaxSeats, t.MaxReservationLength))
	}

	from, to := clock.DayBounds(date, q.loc)
	dayReservations, err := q.reservations.ListOnDay(ctx, restaurantID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	partySizes := make([]int, 0, len(dayReservations))
	for _, r := range dayReservations {
		if reservation.Status(r.Status) == reservation.StatusConfirmed {
			partySizes = append(partySizes, r.NumberOfSeats)
		}
	}

	info := kitchen.NewCapacityInfo(hours, tables, partySizes)
	return &info, nil
}
