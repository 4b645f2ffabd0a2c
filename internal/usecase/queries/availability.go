package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/availability"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetAvailableTimes(ctx context.Context, restaurantID uuid.UUID, date time.Time, partySize int) ([]AvailableTime, error)
}

type availabilityQueriesImpl struct {
	restaurants  RestaurantStore
	tables       TableStore
	reservations ReservationStore
	loc          *time.Location
}

func NewAvailabilityQueries(restaurants RestaurantStore, tables TableStore, reservations ReservationStore, loc *time.Location) AvailabilityQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityQueriesImpl{
		restaurants:  restaurants,
		tables:       tables,
		reservations: reservations,
		loc:          loc,
	}
}

func (q *availabilityQueriesImpl) GetAvailableTimes(ctx context.Context, restaurantID uuid.UUID, date time.Time, partySize int) ([]AvailableTime, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	hours, err := loadHours(ctx, q.restaurants, restaurantID)
	if err != nil {
		return nil, err
	}

	tables, err := q.tables.ListSeatingParty(ctx, restaurantID, partySize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list tables")
	}
	if len(tables) == 0 {
		return []AvailableTime{}, nil
	}

	from, to := clock.DayBounds(date, q.loc)
	dayReservations, err := q.reservations.ListOnDay(ctx, restaurantID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	req := availability.Request{
		Hours:     hours,
		PartySize: partySize,
		Tables:    make([]availability.TableSpec, 0, len(tables)),
		Bookings:  make([]availability.Booking, 0, len(dayReservations)),
	}
	for _, t := range tables {
		req.Tables = append(req.Tables, availability.TableSpec{
			ID:                t.ID,
			MaxSeats:          t.MaxSeats,
			ReservationLength: t.MaxReservationLength,
		})
	}
	for _, r := range dayReservations {
		if !reservation.Status(r.Status).BlocksAvailability() {
			continue
		}
		req.Bookings = append(req.Bookings, availability.Booking{
			TableID:     r.TableID,
			StartMinute: clock.MinuteOfDay(r.StartTime, q.loc),
		})
	}

	slots, err := availability.Compute(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConfiguration)
	}

	result := make([]AvailableTime, 0, len(slots))
	for _, s := range slots {
		result = append(result, AvailableTime{
			Time:      s.Time(),
			MaxSeats:  s.MaxSeats,
			Available: s.Available,
		})
	}
	return result, nil
}

// loadHours resolves the restaurant and its opening hours, mapping a missing
// restaurant to ErrRestaurantNotFound and missing hours to ErrHoursNotConfigured.
func loadHours(ctx context.Context, store RestaurantStore, restaurantID uuid.UUID) (restaurant.Hours, error) {
	view, err := store.FindByID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return restaurant.Hours{}, ErrRestaurantNotFound
		}
		return restaurant.Hours{}, errs.Wrap(err, "failed to load restaurant")
	}

	hours, err := restaurant.ReconstructRestaurant(view.ID, view.Name, view.OpenMinutes, view.CloseMinutes).Hours()
	if err != nil {
		return restaurant.Hours{}, errs.Wrap(ErrHoursNotConfigured, err.Error())
	}
	return hours, nil
}
