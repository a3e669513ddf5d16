package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecut/services/calendar"
)

func TestWindow(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
	window := calendar.Window(now, calendar.DefaultHorizonDays)

	require.Len(t, window, 21)

	t.Run("first entry is today", func(t *testing.T) {
		assert.Equal(t, "Mon Jan 01 2024", window[0].Full)
		assert.True(t, window[0].IsToday)
		assert.Equal(t, "Mon", window[0].DayName)
		assert.Equal(t, 1, window[0].DayNum)
		assert.Equal(t, "Jan", window[0].Month)
	})

	t.Run("exactly one entry is today", func(t *testing.T) {
		count := 0
		for _, d := range window {
			if d.IsToday {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("entries increase by one calendar day", func(t *testing.T) {
		for i, d := range window {
			expected := now.AddDate(0, 0, i).Format("Mon Jan 02 2006")
			assert.Equal(t, expected, d.Full)
		}
	})

	t.Run("deterministic for a given now", func(t *testing.T) {
		assert.Equal(t, window, calendar.Window(now, calendar.DefaultHorizonDays))
	})
}

func TestWindowCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 25, 12, 0, 0, 0, time.UTC)
	window := calendar.Window(now, calendar.DefaultHorizonDays)

	require.Len(t, window, 21)
	assert.Equal(t, "Jan", window[0].Month)
	assert.Equal(t, "Feb", window[20].Month)
	assert.Equal(t, 14, window[20].DayNum)
}

func TestDayByFull(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

	day, ok := calendar.DayByFull(now, calendar.DefaultHorizonDays, "Wed Jan 03 2024")
	require.True(t, ok)
	assert.Equal(t, 3, day.DayNum)
	assert.False(t, day.IsToday)

	t.Run("past dates are not offered", func(t *testing.T) {
		_, ok := calendar.DayByFull(now, calendar.DefaultHorizonDays, "Sun Dec 31 2023")
		assert.False(t, ok)
	})

	t.Run("dates beyond the horizon are not offered", func(t *testing.T) {
		_, ok := calendar.DayByFull(now, calendar.DefaultHorizonDays, "Mon Jan 22 2024")
		assert.False(t, ok)
	})
}
