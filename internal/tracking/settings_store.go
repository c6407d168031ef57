package tracking

import (
	"fmt"
	"os"
	"sync"
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/structures"

	json "github.com/goccy/go-json"
)

// SettingsStore owns the settings document: the persisted timer state
// plus the goal and streak configuration. Unknown or missing fields are
// filled from defaults, so older documents keep loading.
type SettingsStore struct {
	mu       sync.Mutex
	path     string
	logger   providers.Logger
	settings models.Settings
	loaded   bool
}

func NewSettingsStore(conf *structures.Config, logger providers.Logger) *SettingsStore {
	return &SettingsStore{
		path:     conf.Persistence.SettingsFile,
		logger:   logger,
		settings: models.DefaultSettings(),
	}
}

func (s *SettingsStore) Load() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.settings = models.DefaultSettings()
			s.loaded = true
			return s.settings, nil
		}
		return models.Settings{}, err
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
	}

	s.settings = settings
	s.loaded = true
	return settings, nil
}

func (s *SettingsStore) Save(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.loaded = true
	return s.write()
}

// SaveTimerState persists a new timer state without touching the rest
// of the settings document. Injected into the timer as its persistence
// callback.
func (s *SettingsStore) SaveTimerState(state models.TimerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.TimerState = state
	return s.write()
}

func (s *SettingsStore) Current() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *SettingsStore) write() error {
	raw, err := json.MarshalIndent(s.settings, "", "\t")
	if err != nil {
		return err
	}
	return atomicWrite(s.path, raw)
}
