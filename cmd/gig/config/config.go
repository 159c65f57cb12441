// Package config provides the configuration commands for the gig CLI.
package config

import (
	"github.com/spf13/cobra"
)

// CreateConfigCmd creates the config command with all its subcommands.
func CreateConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
		Long:  `Commands for inspecting the saved settings and the token history.`,
	}

	configCmd.AddCommand(createShowCmd(), createClearTokensCmd())

	return configCmd
}
