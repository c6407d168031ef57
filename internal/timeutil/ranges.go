package timeutil

import "time"

// DayRange returns local midnight of t's day and midnight of the next
// day. AddDate keeps the boundary correct across DST shifts.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekRange returns the most recent Monday 00:00 and the Monday after.
func WeekRange(t time.Time) (time.Time, time.Time) {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := t.AddDate(0, 0, -offset+1)
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 7)
}

// MonthRange returns the first of t's month and the first of the next.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	_, end := MonthRange(t)
	return end.AddDate(0, 0, -1).Day()
}
