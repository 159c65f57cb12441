// Package template provides the template commands for the gig CLI.
package template

import (
	"github.com/spf13/cobra"
)

// CreateTemplateCmd creates the template command with all its subcommands.
func CreateTemplateCmd() *cobra.Command {
	templateCmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Issue template commands",
		Long:    `Commands for browsing the built-in issue templates.`,
	}

	templateCmd.AddCommand(createListCmd(), createShowCmd())

	return templateCmd
}
