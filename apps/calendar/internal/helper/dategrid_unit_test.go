package helper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"techcal.asiaclass.dev/apps/calendar/internal/helper"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestStartOfWeek(t *testing.T) {
	// 2024-05-29 is a Wednesday; its week starts Sunday 2024-05-26.
	start := helper.StartOfWeek(time.Date(2024, time.May, 29, 15, 4, 5, 0, time.Local))

	assert.Equal(t, date(2024, time.May, 26), start)
	assert.Equal(t, time.Sunday, start.Weekday())

	// A Sunday is its own week start, truncated to midnight.
	sunday := time.Date(2024, time.May, 26, 23, 59, 0, 0, time.Local)
	assert.Equal(t, date(2024, time.May, 26), helper.StartOfWeek(sunday))
}

func TestWeekBounds(t *testing.T) {
	samples := []time.Time{
		date(2024, time.May, 26),
		date(2024, time.May, 29),
		date(2024, time.June, 1),
		date(2023, time.December, 31),
		date(2024, time.February, 29),
	}

	for _, sample := range samples {
		start := helper.StartOfWeek(sample)
		end := helper.EndOfWeek(sample)

		assert.False(t, sample.Before(start))
		assert.False(t, end.Before(start))
		assert.Equal(t, start.AddDate(0, 0, 6), end)
	}
}

func TestMonthMatrix(t *testing.T) {
	days := helper.MonthMatrix(date(2024, time.May, 26))
	require.Len(t, days, helper.MonthGridDays)

	// Starts on the Sunday on or before May 1st 2024 (a Wednesday).
	assert.Equal(t, date(2024, time.April, 28), days[0])
	assert.Equal(t, helper.StartOfWeek(days[0]), days[0])

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestMonthMatrixAlwaysFull(t *testing.T) {
	// Regardless of where the month starts, the grid stays 42 cells.
	for month := time.January; month <= time.December; month++ {
		days := helper.MonthMatrix(date(2024, month, 15))

		assert.Len(t, days, helper.MonthGridDays)
		assert.Equal(t, time.Sunday, days[0].Weekday())
	}
}

func TestWeekDays(t *testing.T) {
	days := helper.WeekDays(date(2024, time.May, 29))

	require.Len(t, days, 7)
	assert.Equal(t, date(2024, time.May, 26), days[0])
	assert.Equal(t, date(2024, time.June, 1), days[6])
}

func TestAddMonthsRollsOver(t *testing.T) {
	// Month arithmetic normalizes overflow instead of counting fixed days.
	assert.Equal(t,
		date(2024, time.March, 2),
		helper.AddMonths(date(2024, time.January, 31), 1),
	)
	assert.Equal(t,
		date(2025, time.January, 15),
		helper.AddMonths(date(2024, time.December, 15), 1),
	)
	assert.Equal(t,
		date(2023, time.December, 15),
		helper.AddMonths(date(2024, time.January, 15), -1),
	)
}

func TestDateKey(t *testing.T) {
	key := helper.DateKey(time.Date(2024, time.May, 26, 23, 30, 0, 0, time.Local))

	assert.Equal(t, "2024-05-26", key)
}
