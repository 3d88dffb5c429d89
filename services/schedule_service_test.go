package services

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(t *testing.T) *ClockService {
	t.Helper()
	clock, err := NewClockService("Europe/Dublin")
	require.NoError(t, err)
	return clock
}

func TestNextDrawDate(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)

	tests := []struct {
		name string
		from string
		want string
	}{
		{"Monday goes to Wednesday", "2024-01-01", "2024-01-03"},
		{"Tuesday goes to Wednesday", "2024-01-02", "2024-01-03"},
		{"Wednesday goes to the coming Saturday", "2024-01-03", "2024-01-06"},
		{"Thursday goes to Saturday", "2024-01-04", "2024-01-06"},
		{"Friday goes to Saturday", "2024-01-05", "2024-01-06"},
		{"Saturday goes to next week's Wednesday", "2024-01-06", "2024-01-10"},
		{"Sunday goes to Wednesday", "2024-01-07", "2024-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := clock.ParseDateKey(tt.from)
			require.NoError(t, err)

			got := schedule.NextDrawDate(from)
			assert.Equal(t, tt.want, clock.DateKey(got))
		})
	}
}

// A Saturday input must never resolve to the same week's Wednesday
// before it, nor to the Saturday itself.
func TestNextDrawDate_SaturdayNeverDegenerates(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)

	from, err := clock.ParseDateKey("2024-01-06")
	require.NoError(t, err)
	require.Equal(t, time.Saturday, from.Weekday())

	got := schedule.NextDrawDate(from)
	assert.Equal(t, "2024-01-10", clock.DateKey(got))
	assert.NotEqual(t, "2024-01-03", clock.DateKey(got))
	assert.GreaterOrEqual(t, clock.DaysBetween(from, got), 4)
}

func TestNextDrawDate_TimeOfDayIgnored(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)

	evening := time.Date(2024, 1, 3, 23, 59, 0, 0, clock.Location())
	morning := time.Date(2024, 1, 3, 0, 1, 0, 0, clock.Location())

	assert.Equal(t, schedule.NextDrawDate(morning), schedule.NextDrawDate(evening))
}

func TestNextDrawDate_Properties(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, clock.Location())

	properties := gopter.NewProperties(nil)

	properties.Property("next draw is strictly after the input and lands on Wednesday or Saturday", prop.ForAll(
		func(dayOffset int) bool {
			from := base.AddDate(0, 0, dayOffset)
			next := schedule.NextDrawDate(from)

			if clock.DaysBetween(from, next) < 1 {
				return false
			}
			wd := next.Weekday()
			return wd == time.Wednesday || wd == time.Saturday
		},
		gen.IntRange(0, 3650),
	))

	properties.Property("from a Saturday the next draw falls in the following week", prop.ForAll(
		func(weekOffset int) bool {
			saturday := base.AddDate(0, 0, weekOffset*7+3) // 2020-01-04 was a Saturday
			if saturday.Weekday() != time.Saturday {
				return false
			}
			next := schedule.NextDrawDate(saturday)
			return clock.DaysBetween(saturday, next) >= 4 && next.Weekday() == time.Wednesday
		},
		gen.IntRange(0, 520),
	))

	properties.TestingRun(t)
}

func TestNextDrawInstant(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)

	from, err := clock.ParseDateKey("2024-01-01")
	require.NoError(t, err)

	instant := schedule.NextDrawInstant(from)
	assert.Equal(t, "2024-01-03", clock.DateKey(instant))
	assert.Equal(t, 20, instant.Hour())
	assert.Equal(t, 0, instant.Minute())
}

func TestIsDrawDay(t *testing.T) {
	clock := newTestClock(t)
	schedule := NewScheduleService(clock, 20)

	wednesday, _ := clock.ParseDateKey("2024-01-03")
	saturday, _ := clock.ParseDateKey("2024-01-06")
	monday, _ := clock.ParseDateKey("2024-01-01")

	assert.True(t, schedule.IsDrawDay(wednesday))
	assert.True(t, schedule.IsDrawDay(saturday))
	assert.False(t, schedule.IsDrawDay(monday))
}
