package components

import (
	"restaurant-reservations/internal/infra/ticket"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		ticket.NewQREncoder,
		fx.As(new(queries.TicketEncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTableUseCase,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRestaurantQueries,
		queries.NewAvailabilityQueries,
		queries.NewKitchenQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		func(cfg config.Config) usecase.OwnerChecker {
			return usecase.NewAllowlistOwnerChecker(cfg.Auth)
		},
	),
)
