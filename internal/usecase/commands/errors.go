package commands

import "restaurant-reservations/internal/pkg/errs"

var (
	ErrRestaurantNotFound  = errs.Mark(errs.New("restaurant not found"), errs.ErrNotFound)
	ErrTableNotFound       = errs.Mark(errs.New("table not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrMenuItemNotFound    = errs.Mark(errs.New("menu item not found"), errs.ErrNotFound)

	ErrTableNotInRestaurant    = errs.Mark(errs.New("table does not belong to restaurant"), errs.ErrValidation)
	ErrPartyTooLarge           = errs.Mark(errs.New("table cannot seat the party"), errs.ErrValidation)
	ErrMenuItemNotInRestaurant = errs.Mark(errs.New("menu item is not served by restaurant"), errs.ErrValidation)

	ErrSlotTaken     = errs.Mark(errs.New("table is already reserved at this time"), errs.ErrConflict)
	ErrTablesInUse   = errs.Mark(errs.New("tables still have reservations"), errs.ErrConflict)
	ErrNotModifiable = errs.Mark(errs.New("reservation can no longer be modified"), errs.ErrConflict)
)
