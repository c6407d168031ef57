package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"timekeep/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "TIMEKEEP_LOG_LEVEL")
	viper.BindEnv("persistence.dataFile", "TIMEKEEP_DATA_FILE")
	viper.BindEnv("persistence.settingsFile", "TIMEKEEP_SETTINGS_FILE")
	viper.BindEnv("backup.dir", "TIMEKEEP_BACKUP_DIR")
	viper.BindEnv("cache.enabled", "TIMEKEEP_CACHE_ENABLED")
	viper.BindEnv("cache.size", "TIMEKEEP_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "timekeep"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
