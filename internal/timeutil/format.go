package timeutil

import (
	"fmt"
	"time"
)

// FormatHMS renders a duration as HH:MM:SS, used for the live timer.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// FormatHM renders a duration as "1h 5m", or "5m" under an hour,
// rounded to the nearest minute.
func FormatHM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int64(d.Round(time.Minute) / time.Minute)
	if mins >= 60 {
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatClock renders a wall-clock time as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
