package structures

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Persistence struct {
	DataFile     string `yaml:"dataFile" validate:"required|unixPath"`
	SettingsFile string `yaml:"settingsFile" validate:"required|unixPath"`
}

type BackupConfig struct {
	Dir  string `yaml:"dir"`
	Keep int    `yaml:"keep"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Persistence Persistence  `yaml:"persistence"`
	Backup      BackupConfig `yaml:"backup"`
	Logger      LoggerConfig `yaml:"logger"`
	Cache       CacheConfig  `yaml:"cache"`
}
