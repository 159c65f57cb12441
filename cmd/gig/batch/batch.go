// Package batch provides the pending batch commands for the gig CLI.
package batch

import (
	"github.com/spf13/cobra"
)

// CreateBatchCmd creates the batch command with all its subcommands.
func CreateBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:     "batch",
		Aliases: []string{"b"},
		Short:   "Pending batch commands",
		Long: `Commands for preparing a batch of issues and creating them in one go.
Entries are numbered from 1 in the order they will be created.`,
	}

	batchCmd.AddCommand(
		createAddCmd(),
		createEditCmd(),
		createRemoveCmd(),
		createListCmd(),
		createClearCmd(),
		createImportCmd(),
		createExportCmd(),
		createSubmitCmd(),
	)

	return batchCmd
}
