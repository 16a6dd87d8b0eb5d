package cmd

import (
	"fmt"

	"MerlinsForkAPI/internal/utils/daemon"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the API server",
	Long:  `Check if the API server is currently running as a daemon.`,
	Run: func(cmd *cobra.Command, args []string) {
		running, pid := daemon.GetStatus(resolvePIDFile())
		if running {
			fmt.Printf("MerlinsForkAPI is running (PID: %d)\n", pid)
		} else {
			fmt.Println("MerlinsForkAPI is not running")
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
