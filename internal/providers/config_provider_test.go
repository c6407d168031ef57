package providers

import (
	"os"
	"path/filepath"
	"testing"
	"timekeep/internal/structures"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleConfig = `
persistence:
  dataFile: /tmp/timekeep/time-data.json
  settingsFile: /tmp/timekeep/settings.json
backup:
  dir: /tmp/timekeep/backups
  keep: 5
logger:
  level: info
  mode: 420
  dir: /tmp/timekeep/logs
cache:
  enabled: true
  size: 8
`

func TestNewConfigProvider_LoadsFile(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, sampleConfig)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "timekeep", conf.AppName)
	assert.Equal(t, path, conf.Path)
	assert.True(t, conf.Debug)
	assert.Equal(t, "/tmp/timekeep/time-data.json", conf.Persistence.DataFile)
	assert.Equal(t, 5, conf.Backup.Keep)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 8, conf.Cache.Size)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfigRejected(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, `
persistence:
  dataFile: /tmp/timekeep/time-data.json
  settingsFile: /tmp/timekeep/settings.json
logger:
  level: verbose
  mode: 420
  dir: /tmp/timekeep/logs
`)

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	viper.Reset()
	path := writeConfigFile(t, sampleConfig)
	t.Setenv("TIMEKEEP_LOG_LEVEL", "debug")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Logger.Level)
}
