//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"timekeep/internal"
	"timekeep/internal/providers"
	"timekeep/internal/services"
	"timekeep/internal/structures"
	"timekeep/internal/tracking"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,

		tracking.NewZstdCompressor,
		tracking.NewFileManager,
		tracking.NewSettingsStore,
		tracking.NewBackupManager,

		internal.NewDataPersist,
		internal.NewTimerPersist,
		services.NewStoreService,
		services.NewTimerService,
		services.NewReportService,
		internal.NewApp,
	)

	return nil, nil
}
