//go:build unit

package commands

import (
	"context"
	"sync"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/restaurant"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Create(ctx context.Context, t *restaurant.Table) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableRepository) Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error {
	return m.Called(ctx, restaurantID, tableID).Error(0)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *MockReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*reservation.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *MockReservationRepository) AddOrderItem(ctx context.Context, reservationID, menuItemID uuid.UUID, quantity int) error {
	return m.Called(ctx, reservationID, menuItemID, quantity).Error(0)
}

type MockCommandReads struct{ mock.Mock }

func (m *MockCommandReads) RestaurantByID(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.RestaurantSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommandReads) TableByID(ctx context.Context, id uuid.UUID) (*shared.TableSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.TableSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommandReads) MenuItemByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.MenuItemSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeTx struct {
	tables       *MockTableRepository
	reservations *MockReservationRepository
	reads        *MockCommandReads
}

func (t *fakeTx) Tables() shared.TableRepository             { return t.tables }
func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                              { return nil }

// fakeUoW runs fn against mocks and records whether it would have committed.
type fakeUoW struct {
	tx        *fakeTx
	calls     int
	committed bool
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		tables:       new(MockTableRepository),
		reservations: new(MockReservationRepository),
		reads:        new(MockCommandReads),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	err := fn(ctx, u.tx)
	u.committed = err == nil
	return err
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

type MockSlotLocker struct{ mock.Mock }

func (m *MockSlotLocker) Acquire(ctx context.Context, tableID uuid.UUID, start time.Time) (string, error) {
	args := m.Called(ctx, tableID, start)
	return args.String(0), args.Error(1)
}

func (m *MockSlotLocker) Release(ctx context.Context, tableID uuid.UUID, start time.Time, token string) error {
	return m.Called(ctx, tableID, start, token).Error(0)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.ReservationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event shared.ReservationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}
