package config

import (
	"fmt"
	"io"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	pkgconfig "github.com/lerenn/gh-issue-generator/pkg/config"
	"github.com/spf13/cobra"
)

func createShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved settings",
		Long:  `Show the saved settings. Tokens are redacted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := cli.NewConfigManager()
			if err != nil {
				return err
			}

			cfg, err := manager.GetConfigWithFallback()
			if err != nil {
				return fmt.Errorf("%w: %w", cli.ErrFailedToLoadConfig, err)
			}

			displayConfig(cmd.OutOrStdout(), manager.GetConfigPath(), cfg)
			return nil
		},
	}

	return showCmd
}

// displayConfig prints cfg with redacted tokens.
func displayConfig(out io.Writer, path string, cfg pkgconfig.Config) {
	fmt.Fprintln(out, cli.Heading("Configuration")+" "+cli.Muted(path))
	fmt.Fprintf(out, "  api_url:    %s\n", cfg.APIURL)
	fmt.Fprintf(out, "  owner:      %s\n", valueOrUnset(cfg.Owner))
	fmt.Fprintf(out, "  repo:       %s\n", valueOrUnset(cfg.Repo))
	fmt.Fprintf(out, "  token:      %s\n", cli.RedactToken(cfg.Token))
	fmt.Fprintf(out, "  batch_file: %s\n", cfg.BatchFile)

	if len(cfg.TokenHistory) == 0 {
		fmt.Fprintln(out, "  token_history: none")
		return
	}
	fmt.Fprintln(out, "  token_history:")
	for _, token := range cfg.TokenHistory {
		fmt.Fprintf(out, "    - %s\n", cli.RedactToken(token))
	}
}

func valueOrUnset(v string) string {
	if v == "" {
		return "<unset>"
	}
	return v
}
