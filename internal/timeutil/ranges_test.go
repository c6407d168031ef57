package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	at := time.Date(2024, 1, 15, 14, 30, 12, 0, time.UTC)
	start, end := DayRange(at)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekRange_MidWeek(t *testing.T) {
	// 2024-01-17 is a Wednesday; the week began Monday the 15th.
	at := time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)
	start, end := WeekRange(at)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekRange_SundayBelongsToPrecedingMonday(t *testing.T) {
	at := time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC) // Sunday
	start, _ := WeekRange(at)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestWeekRange_MondayStartsItsOwnWeek(t *testing.T) {
	at := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // Monday
	start, _ := WeekRange(at)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestMonthRange(t *testing.T) {
	at := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	start, end := MonthRange(at)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRange_December(t *testing.T) {
	at := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	start, end := MonthRange(at)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysInMonth(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)))
}
