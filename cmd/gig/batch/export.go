package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the pending batch to a document",
		Long: `Write the pending batch as a JSON document, or YAML when the file ends
in .yaml or .yml.

Examples:
  gig batch export issues.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			n, err := gen.BatchExport(args[0])
			if err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "%d issues saved to %s", n, args[0])
			return nil
		},
	}

	return exportCmd
}
