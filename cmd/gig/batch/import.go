package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the pending batch with a document",
		Long: `Replace the pending batch with a JSON (or .yaml/.yml) document: an array of
objects with title, body, labels and assignees.

Examples:
  gig batch import issues.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			n, err := gen.BatchImport(args[0])
			if err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "%d issues loaded from %s", n, args[0])
			return nil
		},
	}

	return importCmd
}
