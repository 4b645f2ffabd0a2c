//go:build unit

package readstore

import (
	"context"

	sqlc "restaurant-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRestaurantReadQueries struct{ mock.Mock }

func (m *MockRestaurantReadQueries) ListRestaurants(ctx context.Context, db sqlc.DBTX) ([]sqlc.Restaurants, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Restaurants), args.Error(1)
}

func (m *MockRestaurantReadQueries) GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Restaurants, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Restaurants), args.Error(1)
}

func (m *MockRestaurantReadQueries) GetMaxTableSize(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) (int32, error) {
	args := m.Called(ctx, db, restaurantID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRestaurantReadQueries) ListRestaurantsVisitedByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRestaurantsVisitedByUserParams) ([]sqlc.Restaurants, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Restaurants), args.Error(1)
}

type MockReservationReadQueries struct{ mock.Mock }

func (m *MockReservationReadQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationByIDRow), args.Error(1)
}

func (m *MockReservationReadQueries) ListOrderItemsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListOrderItemsByReservationRow, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlc.ListOrderItemsByReservationRow), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationsOnDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsOnDayParams) ([]sqlc.ListReservationsOnDayRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsOnDayRow), args.Error(1)
}

type MockMenuReadQueries struct{ mock.Mock }

func (m *MockMenuReadQueries) ListMenusByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.Menus, error) {
	args := m.Called(ctx, db, restaurantID)
	return args.Get(0).([]sqlc.Menus), args.Error(1)
}

func (m *MockMenuReadQueries) ListMenuItemsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.ListMenuItemsByRestaurantRow, error) {
	args := m.Called(ctx, db, restaurantID)
	return args.Get(0).([]sqlc.ListMenuItemsByRestaurantRow), args.Error(1)
}

func (m *MockMenuReadQueries) ListIngredientsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID uuid.UUID) ([]sqlc.Ingredients, error) {
	args := m.Called(ctx, db, restaurantID)
	return args.Get(0).([]sqlc.Ingredients), args.Error(1)
}

func (m *MockMenuReadQueries) GetMenuItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.MenuItems), args.Error(1)
}
