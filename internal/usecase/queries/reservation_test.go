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

func TestReservationQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	tests := []struct {
		name    string
		actor   uuid.UUID
		view    *ReservationView
		repoErr error
		wantErr error
	}{
		{
			name:  "owner sees reservation",
			actor: owner,
			view:  &ReservationView{ID: id, UserID: owner, Status: "PENDING"},
		},
		{
			name:    "other user gets not found",
			actor:   uuid.New(),
			view:    &ReservationView{ID: id, UserID: owner, Status: "PENDING"},
			wantErr: ErrReservationNotFound,
		},
		{
			name:    "missing reservation",
			actor:   owner,
			repoErr: infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound),
			wantErr: ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockReservationStore)
			store.On("FindByID", mock.Anything, id).Return(tt.view, tt.repoErr)
			q := NewReservationQueries(store, new(MockMenuStore), new(MockTicketEncoder), time.UTC)

			got, err := q.GetByID(context.Background(), tt.actor, id)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.True(t, errs.Is(err, errs.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestReservationQueries_Ticket(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	t.Run("encodes reservation reference", func(t *testing.T) {
		store := new(MockReservationStore)
		encoder := new(MockTicketEncoder)
		store.On("FindByID", mock.Anything, id).Return(&ReservationView{ID: id, UserID: owner, Status: "CONFIRMED"}, nil)
		encoder.On("Encode", TicketContent(id)).Return([]byte("png"), nil)

		got, err := NewReservationQueries(store, new(MockMenuStore), encoder, time.UTC).Ticket(context.Background(), owner, id)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), got)
		encoder.AssertExpectations(t)
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		store := new(MockReservationStore)
		encoder := new(MockTicketEncoder)
		store.On("FindByID", mock.Anything, id).Return(&ReservationView{ID: id, UserID: owner, Status: "CANCELLED"}, nil)

		_, err := NewReservationQueries(store, new(MockMenuStore), encoder, time.UTC).Ticket(context.Background(), owner, id)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		encoder.AssertNotCalled(t, "Encode", mock.Anything)
	})

	t.Run("not the owner", func(t *testing.T) {
		store := new(MockReservationStore)
		store.On("FindByID", mock.Anything, id).Return(&ReservationView{ID: id, UserID: owner, Status: "CONFIRMED"}, nil)

		_, err := NewReservationQueries(store, new(MockMenuStore), new(MockTicketEncoder), time.UTC).Ticket(context.Background(), uuid.New(), id)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestReservationQueries_Menus(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	restaurantID := uuid.New()
	ramen := &MenuItemView{ID: uuid.New(), Name: "Ramen", Price: 12.5}
	gyoza := &MenuItemView{ID: uuid.New(), Name: "Gyoza", Price: 6}
	sake := &MenuItemView{ID: uuid.New(), Name: "Sake", Price: 8}
	dinner := &MenuView{ID: uuid.New(), Name: "Dinner", StartMinutes: intPtr(1080), EndMinutes: intPtr(1320), Items: []*MenuItemView{ramen, gyoza}}
	lunch := &MenuView{ID: uuid.New(), Name: "Lunch", StartMinutes: intPtr(660), EndMinutes: intPtr(840), Items: []*MenuItemView{ramen}}
	drinks := &MenuView{ID: uuid.New(), Name: "Drinks", Items: []*MenuItemView{sake}}
	reservation := &ReservationView{
		ID:           id,
		RestaurantID: restaurantID,
		UserID:       owner,
		Status:       "PENDING",
		Items:        []*OrderItemView{{MenuItemID: ramen.ID, Name: "Ramen", Price: 12.5, Quantity: 3}},
	}

	t.Run("served menus carry ordered quantities", func(t *testing.T) {
		store := new(MockReservationStore)
		menus := new(MockMenuStore)
		store.On("FindByID", mock.Anything, id).Return(reservation, nil)
		menus.On("ListByRestaurant", mock.Anything, restaurantID).Return([]*MenuView{lunch, dinner, drinks}, nil)
		q := NewReservationQueries(store, menus, new(MockTicketEncoder), time.UTC)

		got, err := q.Menus(context.Background(), owner, id, time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, []*ReservationMenuView{
			{MenuView: *dinner, Ordered: map[uuid.UUID]int{ramen.ID: 3}},
			{MenuView: *drinks, Ordered: map[uuid.UUID]int{}},
		}, got)
	})

	t.Run("not the owner", func(t *testing.T) {
		store := new(MockReservationStore)
		menus := new(MockMenuStore)
		store.On("FindByID", mock.Anything, id).Return(reservation, nil)
		q := NewReservationQueries(store, menus, new(MockTicketEncoder), time.UTC)

		_, err := q.Menus(context.Background(), uuid.New(), id, time.Now())
		assert.True(t, errs.Is(err, ErrReservationNotFound))
		menus.AssertNotCalled(t, "ListByRestaurant", mock.Anything, mock.Anything)
	})
}
