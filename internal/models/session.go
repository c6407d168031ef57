package models

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a session's end is not after its start.
var ErrInvalidRange = errors.New("session end must be after start")

// Session is a finalized time interval attributed to one project.
// Project references a Project.ID; referential integrity is not enforced
// at write time, a session may point at a deleted project until the
// cascade delete removes it.
type Session struct {
	ID      string    `json:"id"`
	Project string    `json:"project"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlap returns the portion of the session that intersects
// [rangeStart, rangeEnd), zero when they are disjoint.
func (s Session) Overlap(rangeStart, rangeEnd time.Time) time.Duration {
	start := s.Start
	if rangeStart.After(start) {
		start = rangeStart
	}
	end := s.End
	if rangeEnd.Before(end) {
		end = rangeEnd
	}
	if d := end.Sub(start); d > 0 {
		return d
	}
	return 0
}

// Validate rejects intervals where end <= start.
func (s Session) Validate() error {
	if !s.End.After(s.Start) {
		return ErrInvalidRange
	}
	return nil
}
