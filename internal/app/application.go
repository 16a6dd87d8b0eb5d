package app

import (
	"fmt"

	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/logger"
)

// Application represents the main application
type Application struct {
	configPath string
	config     *config.Config
	isRunning  bool
}

// New creates a new application instance
func New(configPath string) *Application {
	return &Application{
		configPath: configPath,
		isRunning:  false,
	}
}

// Initialize loads and validates configuration, then initializes the logger
func (a *Application) Initialize() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	list := cfg.AllowList()
	logger.Info("Application initialized successfully",
		logger.Strings("allowed_hosts", list.Hosts),
		logger.Strings("allowed_origins", list.Origins),
		logger.Bool("allow_credentials", list.AllowCredentials))
	a.isRunning = true
	return nil
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetConfigPath returns the path to the configuration file
func (a *Application) GetConfigPath() string {
	return a.configPath
}

// IsRunning reports whether Initialize succeeded and Shutdown has not run yet
func (a *Application) IsRunning() bool {
	return a.isRunning
}

// Shutdown performs cleanup and shutdown operations
func (a *Application) Shutdown() {
	logger.Info("Shutting down application...")

	a.isRunning = false
	logger.Info("Application shutdown complete")

	// errors from syncing stdout are expected on some platforms
	_ = logger.Sync()
}
