package models

import "time"

type TimerStatus string

const (
	StatusIdle    TimerStatus = "idle"
	StatusRunning TimerStatus = "running"
)

// TimerState is the single live pointer: whether tracking is active,
// for which project, since when. Elapsed time is always recomputed from
// StartTime against the wall clock, never stored.
type TimerState struct {
	Status    TimerStatus `json:"status"`
	ProjectID string      `json:"projectId,omitempty"`
	StartTime *time.Time  `json:"startTime,omitempty"`
}

func IdleState() TimerState {
	return TimerState{Status: StatusIdle}
}

func (ts TimerState) Running() bool {
	return ts.Status == StatusRunning && ts.ProjectID != "" && ts.StartTime != nil
}
