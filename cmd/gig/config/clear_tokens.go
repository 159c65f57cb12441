package config

import (
	"errors"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/spf13/cobra"
)

func createClearTokensCmd() *cobra.Command {
	var yes bool

	clearTokensCmd := &cobra.Command{
		Use:   "clear-tokens [--yes]",
		Short: "Forget the token history",
		Long: `Forget the remembered tokens. The current token is kept.

Examples:
  gig config clear-tokens
  gig config clear-tokens --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			err = gen.ClearTokenHistory(generator.ClearTokenHistoryParams{SkipConfirmation: yes})
			if errors.Is(err, generator.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}

			cli.Successf(cmd.OutOrStdout(), "Token history cleared")
			return nil
		},
	}

	clearTokensCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Clear without confirmation")

	return clearTokensCmd
}
