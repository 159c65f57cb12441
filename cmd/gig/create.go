package main

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/prompt"
	"github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/spf13/cobra"
)

func createCreateCmd() *cobra.Command {
	var (
		templateKey string
		title       string
		body        string
		labels      string
		assignees   string
		issueType   string
		interactive bool
	)

	createCmd := &cobra.Command{
		Use:   "create [--template <key>] --title <title>",
		Short: "Create an issue",
		Long: `Create a single issue, optionally from a template. With a template the
title completes the template prefix, and the body, labels and type default
to the template values.

Examples:
  gig create --title "Crash on login" --body "Steps to reproduce..."
  gig create --template bug --title "Crash on login" --labels bug,auth
  gig create -i --title "Dark mode"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interactive && templateKey == "" {
				choice, err := selectTemplate(prompt.NewPrompt())
				if err != nil {
					return err
				}
				templateKey = choice
			}

			params, err := createIssueParams(templateKey, title, body, labels, assignees, issueType)
			if err != nil {
				return err
			}

			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			result, err := gen.CreateIssue(cmd.Context(), params)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%w: %s", cli.ErrIssueNotCreated, cli.DescribeError(result.Err))
			}

			cli.Successf(cmd.OutOrStdout(), "Issue #%d created: %s", result.Issue.Number, result.Issue.HTMLURL)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&templateKey, "template", "t", "", cli.TemplateFlagUsage())
	createCmd.Flags().StringVar(&title, "title", "", "Issue title")
	createCmd.Flags().StringVar(&body, "body", "", "Issue body (Markdown)")
	createCmd.Flags().StringVar(&labels, "labels", "", "Comma-separated labels")
	createCmd.Flags().StringVar(&assignees, "assignees", "", "Comma-separated assignee logins")
	createCmd.Flags().StringVar(&issueType, "type", "", "Issue type (Bug, Feature, Task)")
	createCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the template interactively")

	return createCmd
}

// createIssueParams converts the create flags.
func createIssueParams(templateKey, title, body, labels, assignees, issueType string) (generator.CreateIssueParams, error) {
	params := generator.CreateIssueParams{
		Title:     title,
		Body:      body,
		Labels:    issue.SplitList(labels),
		Assignees: issue.SplitList(assignees),
	}

	if templateKey != "" {
		key, err := template.Parse(templateKey)
		if err != nil {
			return generator.CreateIssueParams{}, err
		}
		params.Template = key
	}

	t, err := issue.ParseType(issueType)
	if err != nil {
		return generator.CreateIssueParams{}, err
	}
	params.Type = t

	return params, nil
}

// selectTemplate asks the user to pick a template and returns its key.
func selectTemplate(p prompt.Prompter) (string, error) {
	templates := template.All()
	choices := make([]prompt.Choice, 0, len(templates))
	for _, t := range templates {
		choices = append(choices, prompt.Choice{Key: string(t.Key), Label: t.Name, Detail: t.TitlePrefix})
	}

	choice, err := p.PromptSelect("Choose a template:", choices)
	if err != nil {
		return "", err
	}
	return choice.Key, nil
}
