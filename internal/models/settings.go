package models

// Settings is the host-side settings document. DailyGoalMins holds one
// goal per weekday, Sunday first; a zero goal means no goal for that day.
type Settings struct {
	TimerState       TimerState `json:"timerState"`
	DailyGoalMins    [7]int     `json:"dailyGoalMins"`
	StreakTargetMins int        `json:"streakTargetMins"`
}

func DefaultSettings() Settings {
	return Settings{
		TimerState:       IdleState(),
		StreakTargetMins: 60,
	}
}
