package batch

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the pending batch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			drafts, err := gen.BatchList()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drafts) == 0 {
				fmt.Fprintln(out, "The pending batch is empty.")
				return nil
			}

			fmt.Fprintln(out, cli.Heading(fmt.Sprintf("Pending issues (%d):", len(drafts))))
			for i, d := range drafts {
				fmt.Fprintf(out, "  %s\n", cli.FormatDraft(i+1, d))
			}
			return nil
		},
	}

	return listCmd
}
