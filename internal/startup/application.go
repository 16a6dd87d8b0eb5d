package startup

import (
	"fmt"

	"MerlinsForkAPI/internal/app"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/logger"
	"MerlinsForkAPI/internal/utils/finder"
)

// InitializeApplication initializes the application with the given config path
func InitializeApplication(configPath string) (*app.Application, error) {
	foundConfigPath, err := finder.FindConfigFile(configPath, true)
	if err != nil {
		return nil, fmt.Errorf("failed to find configuration: %w", err)
	}

	logger.Info("Using configuration file", logger.String("path", foundConfigPath))

	application := app.New(foundConfigPath)
	if err := application.Initialize(); err != nil {
		return nil, err
	}

	return application, nil
}

// SetupDefaultLogger initializes a console logger for early startup
func SetupDefaultLogger() {
	cfg := config.GetDefaultConfig()
	cfg.Logs.FilePath = ""
	cfg.Logs.Format = "console"

	if err := logger.Init(cfg); err != nil {
		// Can't use logger yet
		panic("Error initializing logger: " + err.Error())
	}
}
