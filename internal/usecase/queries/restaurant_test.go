//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestaurantQueries_Get(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		restaurants := new(MockRestaurantStore)
		restaurants.On("FindByID", mock.Anything, restaurantID).Return(lunchRestaurant(restaurantID), nil)
		restaurants.On("MaxTableSize", mock.Anything, restaurantID).Return(6, nil)
		q := NewRestaurantQueries(restaurants, new(MockTableStore), new(MockMenuStore), time.UTC)

		got, err := q.Get(context.Background(), restaurantID)
		require.NoError(t, err)
		assert.Equal(t, "Trattoria", got.Name)
		assert.Equal(t, 6, got.MaxTableSize)
	})

	t.Run("not found", func(t *testing.T) {
		restaurants := new(MockRestaurantStore)
		restaurants.On("FindByID", mock.Anything, restaurantID).
			Return(nil, infra.WrapRepoErr("restaurant not found", pgx.ErrNoRows, infra.KindNotFound))
		q := NewRestaurantQueries(restaurants, new(MockTableStore), new(MockMenuStore), time.UTC)

		_, err := q.Get(context.Background(), restaurantID)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		restaurants.AssertNotCalled(t, "MaxTableSize", mock.Anything, mock.Anything)
	})
}

func TestRestaurantQueries_CurrentMenus(t *testing.T) {
	restaurantID := uuid.New()
	lunch := &MenuView{ID: uuid.New(), Name: "Lunch", StartMinutes: intPtr(660), EndMinutes: intPtr(840)}
	dinner := &MenuView{ID: uuid.New(), Name: "Dinner", StartMinutes: intPtr(1080), EndMinutes: intPtr(1320)}
	allDay := &MenuView{ID: uuid.New(), Name: "Drinks"}

	tests := []struct {
		name string
		at   time.Time
		want []*MenuView
	}{
		{name: "lunch time", at: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), want: []*MenuView{lunch, allDay}},
		{name: "inclusive end", at: time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), want: []*MenuView{lunch, allDay}},
		{name: "afternoon gap", at: time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC), want: []*MenuView{allDay}},
		{name: "dinner time", at: time.Date(2024, 1, 1, 19, 30, 0, 0, time.UTC), want: []*MenuView{dinner, allDay}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurants := new(MockRestaurantStore)
			menus := new(MockMenuStore)
			restaurants.On("FindByID", mock.Anything, restaurantID).Return(lunchRestaurant(restaurantID), nil)
			menus.On("ListByRestaurant", mock.Anything, restaurantID).Return([]*MenuView{lunch, dinner, allDay}, nil)
			q := NewRestaurantQueries(restaurants, new(MockTableStore), menus, time.UTC)

			got, err := q.CurrentMenus(context.Background(), restaurantID, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestaurantQueries_Tables(t *testing.T) {
	restaurantID := uuid.New()
	restaurants := new(MockRestaurantStore)
	tables := new(MockTableStore)
	want := []*TableView{{ID: uuid.New(), RestaurantID: restaurantID, Name: "A", MaxSeats: 2, MaxReservationLength: 60}}
	restaurants.On("FindByID", mock.Anything, restaurantID).Return(lunchRestaurant(restaurantID), nil)
	tables.On("ListByRestaurant", mock.Anything, restaurantID).Return(want, nil)
	q := NewRestaurantQueries(restaurants, tables, new(MockMenuStore), time.UTC)

	got, err := q.Tables(context.Background(), restaurantID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRestaurantQueries_AllMenus(t *testing.T) {
	restaurantID := uuid.New()
	lunch := &MenuView{ID: uuid.New(), Name: "Lunch", StartMinutes: intPtr(660), EndMinutes: intPtr(840)}
	brunch := &MenuView{ID: uuid.New(), Name: "Brunch", StartMinutes: intPtr(600)}

	t.Run("ignores serving windows", func(t *testing.T) {
		restaurants := new(MockRestaurantStore)
		menus := new(MockMenuStore)
		restaurants.On("FindByID", mock.Anything, restaurantID).Return(lunchRestaurant(restaurantID), nil)
		menus.On("ListByRestaurant", mock.Anything, restaurantID).Return([]*MenuView{brunch, lunch}, nil)
		q := NewRestaurantQueries(restaurants, new(MockTableStore), menus, time.UTC)

		got, err := q.AllMenus(context.Background(), restaurantID)
		require.NoError(t, err)
		assert.Equal(t, []*MenuView{brunch, lunch}, got)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		restaurants := new(MockRestaurantStore)
		menus := new(MockMenuStore)
		restaurants.On("FindByID", mock.Anything, restaurantID).
			Return(nil, infra.WrapRepoErr("restaurant not found", pgx.ErrNoRows, infra.KindNotFound))
		q := NewRestaurantQueries(restaurants, new(MockTableStore), menus, time.UTC)

		_, err := q.AllMenus(context.Background(), restaurantID)
		assert.True(t, errs.Is(err, ErrRestaurantNotFound))
		menus.AssertNotCalled(t, "ListByRestaurant", mock.Anything, mock.Anything)
	})
}

func TestRestaurantQueries_PastVisits(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	visited := lunchRestaurant(uuid.New())

	restaurants := new(MockRestaurantStore)
	restaurants.On("ListVisitedBy", mock.Anything, userID, now).Return([]*RestaurantView{visited}, nil)
	q := NewRestaurantQueries(restaurants, new(MockTableStore), new(MockMenuStore), time.UTC)

	got, err := q.PastVisits(context.Background(), userID, now)
	require.NoError(t, err)
	assert.Equal(t, []*RestaurantView{visited}, got)
	restaurants.AssertExpectations(t)
}
