package components

import (
	"restaurant-reservations/internal/infra/readstore"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/infra/uow"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Restaurant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RestaurantReadQueries)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantStore)),
		),
		// Table
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TableReadQueries)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationStore)),
		),
		// Menu
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuReadQueries)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuStore)),
		),
		// Kitchen
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.KitchenReadQueries)),
		),
		fx.Annotate(
			readstore.NewKitchenReadStore,
			fx.As(new(queries.KitchenStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
