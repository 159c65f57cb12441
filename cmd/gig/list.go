package main

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	var state string

	listCmd := &cobra.Command{
		Use:   "list [--state open|closed|all]",
		Short: "List the repository issues",
		Long: `List the issues of the repository with their number, state, title and URL.
Pull requests are included and marked as such.

Examples:
  gig list
  gig list --state all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}
			if err := cli.RequireCredentials(gen); err != nil {
				return err
			}

			listing, err := gen.ListIssues(cmd.Context(), state)
			if err != nil {
				return err
			}
			if !listing.Success {
				return cli.RequestError(listing.Err)
			}

			displayIssues(cmd, listing.Items)
			return nil
		},
	}

	listCmd.Flags().StringVarP(&state, "state", "s", issue.StateOpen, "Issue state: open, closed or all")

	return listCmd
}

// displayIssues prints one entry per issue.
func displayIssues(cmd *cobra.Command, issues []issue.Issue) {
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues found.")
		return
	}

	fmt.Fprintln(out, cli.Heading(fmt.Sprintf("Issues (%d):", len(issues))))
	for _, i := range issues {
		fmt.Fprintf(out, "  %s\n", cli.FormatIssue(i))
	}
}
