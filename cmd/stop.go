package cmd

import (
	"fmt"

	"MerlinsForkAPI/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the API server",
	Long:  `Stop the API server running as a daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := daemon.StopProcess(resolvePIDFile())
		if err != nil {
			return fmt.Errorf("failed to stop MerlinsForkAPI: %w", err)
		}
		fmt.Printf("MerlinsForkAPI (PID: %d) has been stopped\n", pid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
