package testutil

import (
	"sync"
	"timekeep/internal/models"
	"timekeep/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel returns how many entries were recorded at level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// RecordingPersist captures every document handed to a store persist
// callback, standing in for the file manager.
type RecordingPersist struct {
	mu    sync.Mutex
	Calls []*models.TimeData
	Err   error
}

func (r *RecordingPersist) Persist(data *models.TimeData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, data)
	return r.Err
}

func (r *RecordingPersist) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}

func (r *RecordingPersist) Last() *models.TimeData {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return nil
	}
	return r.Calls[len(r.Calls)-1]
}

// RecordingStatePersist captures persisted timer states.
type RecordingStatePersist struct {
	mu     sync.Mutex
	States []models.TimerState
	Err    error
}

func (r *RecordingStatePersist) Persist(state models.TimerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.States = append(r.States, state)
	return r.Err
}

func (r *RecordingStatePersist) Last() models.TimerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.States) == 0 {
		return models.IdleState()
	}
	return r.States[len(r.States)-1]
}

// NoopCache satisfies providers.CacheProviderInterface for tests that
// do not exercise caching.
type NoopCache struct{}

func (NoopCache) Get(string) ([]byte, bool) { return nil, false }
func (NoopCache) Set(string, []byte)        {}
