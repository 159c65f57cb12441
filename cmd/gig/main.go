// Package main provides the command-line interface for the gig application.
package main

import (
	"os"

	"github.com/lerenn/gh-issue-generator/cmd/gig/batch"
	"github.com/lerenn/gh-issue-generator/cmd/gig/config"
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/cmd/gig/template"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gig",
		Short: "gig - GitHub Issue Generator",
		Long: `Create GitHub issues from templates, one at a time or in batches, ` +
			`and browse the issues, labels and collaborators of a repository.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.Token, "token", "", "GitHub access token (defaults to the config, then GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cli.Owner, "owner", "", "Repository owner")
	rootCmd.PersistentFlags().StringVar(&cli.Name, "name", "", "Repository name")
	rootCmd.PersistentFlags().StringVarP(&cli.Repository, "repo", "R", "",
		"Repository as owner/name or GitHub URL (overrides --owner and --name)")

	rootCmd.AddCommand(
		createVerifyCmd(),
		createCreateCmd(),
		createListCmd(),
		createLabelsCmd(),
		createCollaboratorsCmd(),
		template.CreateTemplateCmd(),
		batch.CreateBatchCmd(),
		config.CreateConfigCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.Failuref(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
