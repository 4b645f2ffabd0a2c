package restaurant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrHoursNotConfigured = errors.New("restaurant opening hours are not configured")
	ErrOpenNotBeforeClose = errors.New("opening time must be before closing time")
	ErrNonPositiveQuantum = errors.New("slot length must be positive")
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS". Seconds are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String renders HH:MM:SS with seconds always zero.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Hours is a same-day opening window, open strictly before close.
type Hours struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewHours(openAt, closeAt TimeOfDay) (Hours, error) {
	if openAt < 0 || closeAt >= minutesPerDay || openAt >= closeAt {
		return Hours{}, ErrOpenNotBeforeClose
	}
	return Hours{open: openAt, close: closeAt}, nil
}

// HoursFromMinutes builds Hours from nullable storage columns.
func HoursFromMinutes(openMinutes, closeMinutes *int) (Hours, error) {
	if openMinutes == nil || closeMinutes == nil {
		return Hours{}, ErrHoursNotConfigured
	}
	return NewHours(TimeOfDay(*openMinutes), TimeOfDay(*closeMinutes))
}

func (h Hours) Open() TimeOfDay  { return h.open }
func (h Hours) Close() TimeOfDay { return h.close }

func (h Hours) Span() int {
	return int(h.close - h.open)
}

// SlotStarts lists open, open+quantum, ... strictly before close.
func (h Hours) SlotStarts(quantum int) ([]TimeOfDay, error) {
	if quantum <= 0 {
		return nil, ErrNonPositiveQuantum
	}
	starts := make([]TimeOfDay, 0, h.Span()/quantum+1)
	for t := h.open; t < h.close; t += TimeOfDay(quantum) {
		starts = append(starts, t)
	}
	return starts, nil
}
