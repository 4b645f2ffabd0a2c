//go:build unit

package commands

import (
	"context"
	"testing"

	"restaurant-reservations/internal/domain/restaurant"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkUpdate(t *testing.T) {
	restaurantID := uuid.New()
	inputs := []TableInput{
		{Name: "Window", MaxSeats: 2, MaxReservationLength: 60},
		{Name: "Patio", MaxSeats: 6, MaxReservationLength: 120},
	}

	t.Run("replaces all tables", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("RestaurantByID", mock.Anything, restaurantID).Return(&shared.RestaurantSnapshot{ID: restaurantID}, nil)
		uow.tx.tables.On("DeleteByRestaurant", mock.Anything, restaurantID).Return(int64(3), nil)
		uow.tx.tables.On("Create", mock.Anything, mock.MatchedBy(func(tb *restaurant.Table) bool {
			return tb.RestaurantID() == restaurantID
		})).Return(nil)

		ids, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, inputs)
		require.NoError(t, err)
		assert.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
		assert.True(t, uow.committed)
		uow.tx.tables.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("empty list clears tables", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("RestaurantByID", mock.Anything, restaurantID).Return(&shared.RestaurantSnapshot{ID: restaurantID}, nil)
		uow.tx.tables.On("DeleteByRestaurant", mock.Anything, restaurantID).Return(int64(2), nil)

		ids, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
		uow.tx.tables.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid entry rejects the whole set before touching storage", func(t *testing.T) {
		uow := newFakeUoW()
		bad := append([]TableInput{}, inputs...)
		bad[1].MaxSeats = 0

		_, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, bad)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, restaurant.ErrInvalidMaxSeats))
		assert.Contains(t, err.Error(), "tables[1]")
		assert.Equal(t, 0, uow.calls)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("RestaurantByID", mock.Anything, restaurantID).
			Return(nil, infra.WrapRepoErr("restaurant not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, inputs)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		uow.tx.tables.AssertNotCalled(t, "DeleteByRestaurant", mock.Anything, mock.Anything)
	})

	t.Run("tables referenced by reservations", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("RestaurantByID", mock.Anything, restaurantID).Return(&shared.RestaurantSnapshot{ID: restaurantID}, nil)
		uow.tx.tables.On("DeleteByRestaurant", mock.Anything, restaurantID).
			Return(int64(0), infra.WrapRepoErr("failed to delete restaurant tables", &pgconn.PgError{Code: "23503"}))

		_, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, inputs)
		assert.True(t, errs.Is(err, ErrTablesInUse))
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.False(t, uow.committed)
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.On("RestaurantByID", mock.Anything, restaurantID).Return(&shared.RestaurantSnapshot{ID: restaurantID}, nil)
		uow.tx.tables.On("DeleteByRestaurant", mock.Anything, restaurantID).Return(int64(1), nil)
		uow.tx.tables.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		uow.tx.tables.On("Create", mock.Anything, mock.Anything).Return(infra.WrapRepoErr("failed to create table", assert.AnError)).Once()

		ids, err := NewTableUseCase(uow).BulkUpdate(context.Background(), restaurantID, inputs)
		require.Error(t, err)
		assert.Nil(t, ids)
		assert.False(t, uow.committed)
	})
}

func TestDeleteTable(t *testing.T) {
	restaurantID, tableID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "table of another restaurant",
			repoErr: infra.WrapRepoErr("table not found", nil, infra.KindNotFound),
			wantErr: errs.ErrNotFound,
		},
		{
			name:    "table with reservations",
			repoErr: infra.WrapRepoErr("failed to delete table", &pgconn.PgError{Code: "23503"}),
			wantErr: errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUoW()
			uow.tx.tables.On("Delete", mock.Anything, restaurantID, tableID).Return(tt.repoErr)

			err := NewTableUseCase(uow).Delete(context.Background(), restaurantID, tableID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tt.wantErr))
		})
	}
}
