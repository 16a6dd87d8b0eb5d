package cmd

import (
	"fmt"
	"os"

	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/startup"
	"MerlinsForkAPI/internal/utils/finder"

	"github.com/spf13/cobra"
)

var (
	configPath string
	pidFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "merlinsfork_api",
	Short: "The MerlinsFork backend API",
	Long: `MerlinsForkAPI serves the backend for the MerlinsFork frontend: JWT
authentication, API documentation and an administration site, guarded by
host, origin, method and header allow-lists.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&pidFile, "pid-file", "", "Path to PID file (defaults to server.pid_file from the configuration)")
}

// loadConfig reads the configuration without initializing the application
func loadConfig() (*config.Config, error) {
	path, err := finder.FindConfigFile(configPath, true)
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(path)
}

// resolvePIDFile prefers the flag, then the configuration, then the built-in default
func resolvePIDFile() string {
	if pidFile != "" {
		return pidFile
	}
	if cfg, err := loadConfig(); err == nil && cfg.Server.PIDFile != "" {
		return cfg.Server.PIDFile
	}
	return config.GetDefaultConfig().Server.PIDFile
}
