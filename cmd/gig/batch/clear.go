package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the pending batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			if err := gen.BatchClear(); err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "Pending batch cleared")
			return nil
		},
	}

	return clearCmd
}
