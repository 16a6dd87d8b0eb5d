package cmd

import (
	"fmt"

	"MerlinsForkAPI/internal/startup"
	"MerlinsForkAPI/internal/utils/daemon"
	"MerlinsForkAPI/internal/utils/signal"

	"github.com/spf13/cobra"
)

var (
	foreground bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Start the API server in foreground or as a daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pidPath := resolvePIDFile()

		if daemon.IsRunning(pidPath) {
			return fmt.Errorf("%w (PID file exists at %s)", daemon.ErrAlreadyRunning, pidPath)
		}

		// If not in foreground mode and not already a child process, daemonize
		if !foreground && !daemon.IsChild() {
			pid, err := daemon.Daemonize(configPath, pidPath)
			if err != nil {
				return err
			}
			fmt.Printf("MerlinsForkAPI started in background (PID: %d)\n", pid)
			return nil
		}

		application, err := startup.InitializeApplication(configPath)
		if err != nil {
			return err
		}

		if daemon.IsChild() {
			pf, err := daemon.Acquire(pidPath)
			if err != nil {
				return err
			}
			signal.RegisterCleanupFunc(pf.Release)
		}

		builder, serverErr, err := startup.StartServer(application)
		if err != nil {
			return err
		}

		return signal.HandleSignals(application, builder, serverErr)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (not as daemon)")
}
