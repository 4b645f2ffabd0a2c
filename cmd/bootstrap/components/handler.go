package components

import (
	"restaurant-reservations/internal/handler"
	"restaurant-reservations/internal/handler/api"
	"restaurant-reservations/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRestaurantHandler,
		api.NewTableHandler,
		api.NewKitchenHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
