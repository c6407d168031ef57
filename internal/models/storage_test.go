package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeData_SeedsDefaults(t *testing.T) {
	data := NewTimeData()
	assert.Equal(t, DataVersion, data.Version)
	assert.Len(t, data.Projects, 2)
	assert.Empty(t, data.Sessions)
	assert.NotNil(t, data.Sessions)
}

func TestTimeData_CloneIsIndependent(t *testing.T) {
	data := NewTimeData()
	data.Sessions = append(data.Sessions, mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z"))

	clone := data.Clone()
	clone.Projects[0].Name = "mutated"
	clone.Sessions[0].Project = "other"

	assert.Equal(t, "Work", data.Projects[0].Name)
	assert.Equal(t, "work", data.Sessions[0].Project)
}

func TestTimeData_JSONRoundtrip(t *testing.T) {
	original := NewTimeData()
	original.Sessions = append(original.Sessions, mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:30:00Z"))

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var restored TimeData
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, original.Version, restored.Version)
	assert.Equal(t, original.Projects, restored.Projects)
	require.Len(t, restored.Sessions, 1)
	assert.True(t, original.Sessions[0].Start.Equal(restored.Sessions[0].Start))
}

func TestTimerState_JSON(t *testing.T) {
	start, _ := time.Parse(time.RFC3339, "2024-01-01T09:00:00Z")
	running := TimerState{Status: StatusRunning, ProjectID: "work", StartTime: &start}

	raw, err := json.Marshal(running)
	require.NoError(t, err)

	var restored TimerState
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.True(t, restored.Running())
	assert.Equal(t, "work", restored.ProjectID)
	assert.True(t, start.Equal(*restored.StartTime))
}

func TestTimerState_IdleOmitsFields(t *testing.T) {
	raw, err := json.Marshal(IdleState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"idle"}`, string(raw))
}

func TestSettings_DefaultsMergeOverMissingFields(t *testing.T) {
	settings := DefaultSettings()
	require.NoError(t, json.Unmarshal([]byte(`{"timerState":{"status":"idle"}}`), &settings))
	assert.Equal(t, 60, settings.StreakTargetMins)
	assert.Equal(t, [7]int{}, settings.DailyGoalMins)
}
