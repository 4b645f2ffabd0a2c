package bootstrap

import (
	"time"

	"restaurant-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

// NewBookingLocation is the zone in which booking days and opening hours are
// interpreted.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
