package internal

import (
	"timekeep/internal/models"
	"timekeep/internal/providers"
	"timekeep/internal/services"
	"timekeep/internal/structures"
	"timekeep/internal/tracking"
)

// App is the composition of the core services, built once per process
// by the injector. The CLI host talks to the services directly; there
// is no ambient global holding them.
type App struct {
	Config   *structures.Config
	Logger   providers.Logger
	Store    services.StoreServiceInterface
	Timer    services.TimerServiceInterface
	Reports  services.ReportServiceInterface
	Settings *tracking.SettingsStore
	Backups  *tracking.BackupManager
}

// NewDataPersist binds the store's persistence callback to the
// configured data file.
func NewDataPersist(conf *structures.Config, fileManager *tracking.FileManager) services.PersistDataFunc {
	return func(data *models.TimeData) error {
		return fileManager.Save(conf.Persistence.DataFile, data)
	}
}

// NewTimerPersist routes timer state into the settings document.
func NewTimerPersist(settings *tracking.SettingsStore) services.PersistStateFunc {
	return settings.SaveTimerState
}

func NewApp(
	conf *structures.Config,
	logger providers.Logger,
	fileManager *tracking.FileManager,
	settings *tracking.SettingsStore,
	backups *tracking.BackupManager,
	store services.StoreServiceInterface,
	timer services.TimerServiceInterface,
	reports services.ReportServiceInterface,
) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	data, err := fileManager.Load(conf.Persistence.DataFile)
	if err != nil {
		logger.Errorf(providers.TypeApp, "Load error: %s", err)
		return nil, err
	}
	store.PutData(data)

	// Safety snapshot of the loaded document, before any mutation in
	// this process. Backup trouble is logged, not fatal.
	if backups.Enabled() {
		if err := backups.Write(data); err != nil {
			logger.Warnf(providers.TypeApp, "Backup error: %s", err)
		}
	}

	loaded, err := settings.Load()
	if err != nil {
		logger.Errorf(providers.TypeApp, "Settings load error: %s", err)
		return nil, err
	}
	timer.Load(loaded.TimerState)

	return &App{
		Config:   conf,
		Logger:   logger,
		Store:    store,
		Timer:    timer,
		Reports:  reports,
		Settings: settings,
		Backups:  backups,
	}, nil
}

func (a *App) Close() {
	a.Backups.Close()
	a.Logger.Close()
}
