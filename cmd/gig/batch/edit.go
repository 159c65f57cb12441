package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/spf13/cobra"
)

func createEditCmd() *cobra.Command {
	var (
		title     string
		body      string
		labels    string
		assignees string
	)

	editCmd := &cobra.Command{
		Use:   "edit <number> [--title <title>] [--body <body>] [--labels <a,b>] [--assignees <a,b>]",
		Short: "Edit an entry of the pending batch",
		Long: `Edit an entry of the pending batch. Only the given flags are changed;
an empty --labels or --assignees clears the list.

Examples:
  gig batch edit 2 --title "Crash on logout"
  gig batch edit 2 --labels ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cli.ParseEntryNumber(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var params generator.BatchEditParams
			if flags.Changed("title") {
				params.Title = &title
			}
			if flags.Changed("body") {
				params.Body = &body
			}
			if flags.Changed("labels") {
				list := issue.SplitList(labels)
				params.Labels = &list
			}
			if flags.Changed("assignees") {
				list := issue.SplitList(assignees)
				params.Assignees = &list
			}

			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			draft, err := gen.BatchEdit(index, params)
			if err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "Entry updated: %s", cli.FormatDraft(index+1, draft))
			return nil
		},
	}

	editCmd.Flags().StringVar(&title, "title", "", "New title")
	editCmd.Flags().StringVar(&body, "body", "", "New body")
	editCmd.Flags().StringVar(&labels, "labels", "", "New comma-separated labels")
	editCmd.Flags().StringVar(&assignees, "assignees", "", "New comma-separated assignee logins")

	return editCmd
}
