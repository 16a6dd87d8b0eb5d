package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// checkCmd validates the configuration and prints the effective allow-lists
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long:  `Load the configuration file, apply environment overrides and validate the allow-lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration:\n%w", err)
		}

		list := cfg.AllowList()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Allowed hosts:     %s\n", strings.Join(list.Hosts, ", "))
		fmt.Fprintf(out, "Allowed origins:   %s\n", strings.Join(list.Origins, ", "))
		fmt.Fprintf(out, "Allowed methods:   %s\n", strings.Join(list.Methods, ", "))
		fmt.Fprintf(out, "Allowed headers:   %s\n", strings.Join(list.Headers, ", "))
		fmt.Fprintf(out, "Allow credentials: %t\n", list.AllowCredentials)
		fmt.Fprintln(out, "Configuration OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
