//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2024-01-01 20:00 UTC is already 2024-01-02 in Tokyo
	at := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	start, end := DayBounds(at, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), end)

	start, end = DayBounds(at, tokyo)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, tokyo), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2024, 1, 1, 11, 30, 59, 0, time.UTC)
	assert.Equal(t, 690, MinuteOfDay(at, time.UTC))

	est := time.FixedZone("EST", -5*60*60)
	assert.Equal(t, 390, MinuteOfDay(at, est))
}

func TestMockClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	c := NewMockClock(base)
	assert.Equal(t, base, c.Now())

	c.Set(base.Add(time.Hour))
	assert.Equal(t, base.Add(time.Hour), c.Now())
}
