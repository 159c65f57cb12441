package template

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	pkgtemplate "github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the issue templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, t := range pkgtemplate.All() {
				fmt.Fprintf(out, "  %-14s %s %s\n", t.Key, t.Name,
					cli.Muted(fmt.Sprintf("(title %q, label %s, type %s)", t.TitlePrefix, t.Label, t.Type)))
			}
			return nil
		},
	}

	return listCmd
}
