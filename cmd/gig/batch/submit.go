package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/spf13/cobra"
)

func createSubmitCmd() *cobra.Command {
	var yes bool

	submitCmd := &cobra.Command{
		Use:   "submit [--yes]",
		Short: "Create every issue of the pending batch",
		Long: `Create the pending issues in order. Creation continues past failures;
issues that could not be created stay in the pending batch.
Issue types are not sent for batch entries.

Examples:
  gig batch submit
  gig batch submit --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			result, err := gen.SubmitBatch(cmd.Context(), generator.SubmitBatchParams{SkipConfirmation: yes})
			if err != nil && !errors.Is(err, generator.ErrBatchIncomplete) {
				return err
			}

			displayOutcomes(cmd.OutOrStdout(), result)
			return err
		},
	}

	submitCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Submit without confirmation")

	return submitCmd
}

// displayOutcomes prints one line per submitted entry.
func displayOutcomes(out io.Writer, result issue.BatchResult) {
	for _, o := range result.Outcomes {
		if o.Success() {
			cli.Successf(out, "%s: #%d %s", o.Draft.Title, o.Issue.Number, o.Issue.HTMLURL)
			continue
		}
		cli.Failuref(out, "%s: %s", o.Draft.Title, cli.DescribeError(o.Err))
	}

	if !cli.Quiet {
		fmt.Fprintf(out, "%d of %d issues created\n", result.Succeeded(), len(result.Outcomes))
	}
}
