//go:build unit

package queries

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/kitchen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRestaurantStore struct{ mock.Mock }

func (m *MockRestaurantStore) List(ctx context.Context) ([]*RestaurantView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*RestaurantView), args.Error(1)
}

func (m *MockRestaurantStore) FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*RestaurantView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRestaurantStore) MaxTableSize(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRestaurantStore) ListVisitedBy(ctx context.Context, userID uuid.UUID, before time.Time) ([]*RestaurantView, error) {
	args := m.Called(ctx, userID, before)
	return args.Get(0).([]*RestaurantView), args.Error(1)
}

type MockTableStore struct{ mock.Mock }

func (m *MockTableStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*TableView, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]*TableView), args.Error(1)
}

func (m *MockTableStore) ListSeatingParty(ctx context.Context, restaurantID uuid.UUID, partySize int) ([]*TableView, error) {
	args := m.Called(ctx, restaurantID, partySize)
	return args.Get(0).([]*TableView), args.Error(1)
}

type MockReservationStore struct{ mock.Mock }

func (m *MockReservationStore) FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*ReservationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationStore) ListOnDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*DayReservation, error) {
	args := m.Called(ctx, restaurantID, from, to)
	return args.Get(0).([]*DayReservation), args.Error(1)
}

type MockKitchenStore struct{ mock.Mock }

func (m *MockKitchenStore) IngredientLines(ctx context.Context, restaurantID uuid.UUID, start, end time.Time, confirmedOnly bool) ([]kitchen.IngredientLine, error) {
	args := m.Called(ctx, restaurantID, start, end, confirmedOnly)
	return args.Get(0).([]kitchen.IngredientLine), args.Error(1)
}

func (m *MockKitchenStore) DishOrders(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]DishOrder, error) {
	args := m.Called(ctx, restaurantID, from, to)
	return args.Get(0).([]DishOrder), args.Error(1)
}

func (m *MockKitchenStore) MenuItemNames(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]string), args.Error(1)
}

type MockMenuStore struct{ mock.Mock }

func (m *MockMenuStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*MenuView, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]*MenuView), args.Error(1)
}

func (m *MockMenuStore) ListIngredients(ctx context.Context, restaurantID uuid.UUID) ([]*IngredientView, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]*IngredientView), args.Error(1)
}

type MockTicketEncoder struct{ mock.Mock }

func (m *MockTicketEncoder) Encode(content string) ([]byte, error) {
	args := m.Called(content)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func intPtr(v int) *int { return &v }

func lunchRestaurant(id uuid.UUID) *RestaurantView {
	return &RestaurantView{ID: id, Name: "Trattoria", OpenMinutes: intPtr(660), CloseMinutes: intPtr(780)}
}
