package request

import (
	"time"

	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// DayQuery selects a calendar day in the booking time zone.
type DayQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (q DayQuery) Day(loc *time.Location) (time.Time, error) {
	return parseDay(q.Date, loc)
}

type AvailableTimesQuery struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	PartySize int    `form:"partySize" binding:"required"`
}

func (q AvailableTimesQuery) Day(loc *time.Location) (time.Time, error) {
	return parseDay(q.Date, loc)
}

type CurrentMenusQuery struct {
	At string `form:"at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// AtOr returns the requested instant, or fallback when none was given.
func (q CurrentMenusQuery) AtOr(fallback time.Time) (time.Time, error) {
	if q.At == "" {
		return fallback, nil
	}
	return parseInstant(q.At)
}

type IngredientReportQuery struct {
	Start         string `form:"start" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	End           string `form:"end" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ConfirmedOnly bool   `form:"confirmedOnly"`
}

func (q IngredientReportQuery) ToParams(restaurantID uuid.UUID) (queries.IngredientReportParams, error) {
	params := queries.IngredientReportParams{
		RestaurantID:  restaurantID,
		ConfirmedOnly: q.ConfirmedOnly,
	}
	if q.Start != "" {
		start, err := parseInstant(q.Start)
		if err != nil {
			return params, err
		}
		params.StartTime = &start
	}
	if q.End != "" {
		end, err := parseInstant(q.End)
		if err != nil {
			return params, err
		}
		params.EndTime = &end
	}
	return params, nil
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "invalid date"), errs.ErrValidation)
	}
	return day, nil
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "invalid timestamp"), errs.ErrValidation)
	}
	return t, nil
}
