package queries

import "restaurant-reservations/internal/pkg/errs"

var (
	ErrRestaurantNotFound  = errs.Mark(errs.New("restaurant not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrHoursNotConfigured  = errs.Mark(errs.New("restaurant opening hours are not configured"), errs.ErrConfiguration)
	ErrInvalidPartySize    = errs.Mark(errs.New("party size must be at least 1"), errs.ErrValidation)
	ErrInvalidWindow       = errs.Mark(errs.New("start time must not be after end time"), errs.ErrValidation)
	ErrMalformedOrderData  = errs.Mark(errs.New("order data does not fit opening hours"), errs.ErrValidation)
	ErrTicketUnavailable   = errs.Mark(errs.New("cancelled reservations have no ticket"), errs.ErrConflict)
)
