//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestRestaurant(t *testing.T, db DBLike, name string, openTime, closeTime *string) uuid.UUID {
	t.Helper()

	restaurantID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO restaurants (id, name, open_time, close_time) VALUES ($1, $2, $3::time, $4::time)",
		restaurantID, name, openTime, closeTime)
	require.NoError(t, err)

	return restaurantID
}

func CreateTestTable(t *testing.T, db DBLike, restaurantID uuid.UUID, name string, maxSeats, maxReservationLength int) uuid.UUID {
	t.Helper()

	tableID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO dining_tables (id, restaurant_id, name, max_seats, max_reservation_length) VALUES ($1, $2, $3, $4, $5)",
		tableID, restaurantID, name, maxSeats, maxReservationLength)
	require.NoError(t, err)

	return tableID
}

func CreateTestReservation(t *testing.T, db DBLike, restaurantID, tableID, userID uuid.UUID, start time.Time, length time.Duration, seats int, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, restaurant_id, table_id, user_id, start_time, end_time, number_of_seats, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		reservationID, restaurantID, tableID, userID, start, start.Add(length), seats, status)
	require.NoError(t, err)

	return reservationID
}

// CreateTestMenuItem adds a dish served by a menu of the restaurant. A nil
// window means the menu is served all day.
func CreateTestMenuItem(t *testing.T, db DBLike, restaurantID uuid.UUID, menuName, itemName string, price float64, menuStart, menuEnd *string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	var menuID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM menus WHERE restaurant_id = $1 AND name = $2", restaurantID, menuName).Scan(&menuID)
	if err != nil {
		menuID = uuid.New()
		_, err = db.Exec(ctx,
			"INSERT INTO menus (id, restaurant_id, name, start_time, end_time) VALUES ($1, $2, $3, $4::time, $5::time)",
			menuID, restaurantID, menuName, menuStart, menuEnd)
		require.NoError(t, err)
	}

	itemID := uuid.New()
	_, err = db.Exec(ctx,
		"INSERT INTO menu_items (id, restaurant_id, name, price) VALUES ($1, $2, $3, $4)",
		itemID, restaurantID, itemName, price)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO menu_item_to_menu (menu_id, menu_item_id) VALUES ($1, $2)", menuID, itemID)
	require.NoError(t, err)

	return itemID
}

func CreateTestIngredient(t *testing.T, db DBLike, menuItemID uuid.UUID, name string, quantity float64, unit string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	ingredientID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO ingredients (id, restaurant_id, name) SELECT $1, restaurant_id, $2 FROM menu_items WHERE id = $3",
		ingredientID, name, menuItemID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO menu_item_ingredients (menu_item_id, ingredient_id, quantity, unit) VALUES ($1, $2, $3, $4)",
		menuItemID, ingredientID, quantity, unit)
	require.NoError(t, err)

	return ingredientID
}

func CreateTestOrderItem(t *testing.T, db DBLike, reservationID, menuItemID uuid.UUID, quantity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO order_items (reservation_id, menu_item_id, quantity) VALUES ($1, $2, $3)",
		reservationID, menuItemID, quantity)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
