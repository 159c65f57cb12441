package batch

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	var (
		templateKey string
		title       string
		body        string
		labels      string
		assignees   string
	)

	addCmd := &cobra.Command{
		Use:   "add [--template <key>] [--title <title>]",
		Short: "Add an issue to the pending batch",
		Long: `Add an issue to the pending batch. Without a title and body the entry
starts as "New issue" / "Issue description" and can be changed later
with gig batch edit.

Examples:
  gig batch add
  gig batch add --title "Crash on login" --labels bug,auth
  gig batch add --template feature --title "Dark mode"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := generator.BatchAddParams{
				Title:     title,
				Body:      body,
				Labels:    issue.SplitList(labels),
				Assignees: issue.SplitList(assignees),
			}
			if templateKey != "" {
				key, err := template.Parse(templateKey)
				if err != nil {
					return err
				}
				params.Template = key
			}

			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			index, err := gen.BatchAdd(params)
			if err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "Entry %d added to the pending batch", index+1)
			return nil
		},
	}

	addCmd.Flags().StringVarP(&templateKey, "template", "t", "", cli.TemplateFlagUsage())
	addCmd.Flags().StringVar(&title, "title", "", "Issue title")
	addCmd.Flags().StringVar(&body, "body", "", "Issue body (Markdown)")
	addCmd.Flags().StringVar(&labels, "labels", "", "Comma-separated labels")
	addCmd.Flags().StringVar(&assignees, "assignees", "", "Comma-separated assignee logins")

	return addCmd
}
