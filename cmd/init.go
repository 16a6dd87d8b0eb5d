package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/utils"

	"github.com/spf13/cobra"
)

var force bool

// initCmd writes the default configuration file
var initCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to the --config path. An existing file
is only replaced with --force, after a timestamped backup is taken.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", configPath)
		}

		backup, err := utils.BackupFile(configPath, time.Now())
		if err != nil {
			return err
		}
		if backup != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up existing configuration to %s\n", backup)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
		if err := config.SaveConfig(config.GetDefaultConfig(), configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
}
