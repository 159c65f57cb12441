package template

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	pkgtemplate "github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/spf13/cobra"
)

func createShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show an issue template",
		Long: `Show the title prefix, label, type and body of a template.

Examples:
  gig template show bug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := pkgtemplate.Parse(args[0])
			if err != nil {
				return err
			}
			t, err := pkgtemplate.Get(key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.Heading(t.Name))
			fmt.Fprintf(out, "Title prefix: %q\n", t.TitlePrefix)
			fmt.Fprintf(out, "Label:        %s\n", t.Label)
			fmt.Fprintf(out, "Type:         %s\n\n", t.Type)
			fmt.Fprintln(out, t.Body)
			return nil
		},
	}

	return showCmd
}
