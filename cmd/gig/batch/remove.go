package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:     "remove <number>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry from the pending batch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cli.ParseEntryNumber(args[0])
			if err != nil {
				return err
			}

			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			if err := gen.BatchRemove(index); err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "Entry %d removed", index+1)
			return nil
		},
	}

	return removeCmd
}
