package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSession(start, end string) Session {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		panic(err)
	}
	return Session{ID: "s1", Project: "work", Start: s, End: e}
}

func TestSession_Duration(t *testing.T) {
	s := mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:30:00Z")
	assert.Equal(t, 90*time.Minute, s.Duration())
}

func TestSession_OverlapFullyInside(t *testing.T) {
	s := mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z")
	start, _ := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2024-01-02T00:00:00Z")
	assert.Equal(t, time.Hour, s.Overlap(start, end))
}

func TestSession_OverlapPartial(t *testing.T) {
	s := mkSession("2024-01-01T23:00:00Z", "2024-01-02T01:00:00Z")
	start, _ := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2024-01-02T00:00:00Z")
	assert.Equal(t, time.Hour, s.Overlap(start, end))

	nextEnd, _ := time.Parse(time.RFC3339, "2024-01-03T00:00:00Z")
	assert.Equal(t, time.Hour, s.Overlap(end, nextEnd))
}

func TestSession_OverlapDisjoint(t *testing.T) {
	s := mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z")
	start, _ := time.Parse(time.RFC3339, "2024-01-02T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2024-01-03T00:00:00Z")
	assert.Equal(t, time.Duration(0), s.Overlap(start, end))
}

func TestSession_ValidateRejectsBackwards(t *testing.T) {
	s := mkSession("2024-01-01T10:00:00Z", "2024-01-01T09:00:00Z")
	assert.ErrorIs(t, s.Validate(), ErrInvalidRange)
}

func TestSession_ValidateRejectsZeroLength(t *testing.T) {
	s := mkSession("2024-01-01T09:00:00Z", "2024-01-01T09:00:00Z")
	assert.ErrorIs(t, s.Validate(), ErrInvalidRange)
}

func TestSession_JSONRoundtrip(t *testing.T) {
	original := mkSession("2024-01-01T09:00:00Z", "2024-01-01T10:30:00Z")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Project, restored.Project)
	assert.True(t, original.Start.Equal(restored.Start))
	assert.True(t, original.End.Equal(restored.End))
}
