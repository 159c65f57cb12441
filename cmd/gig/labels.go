package main

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createLabelsCmd() *cobra.Command {
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "List the repository labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}
			if err := cli.RequireCredentials(gen); err != nil {
				return err
			}

			listing, err := gen.GetLabels(cmd.Context())
			if err != nil {
				return err
			}
			if !listing.Success {
				return cli.RequestError(listing.Err)
			}

			out := cmd.OutOrStdout()
			if len(listing.Items) == 0 {
				fmt.Fprintln(out, "No labels found.")
				return nil
			}
			for _, label := range listing.Items {
				if label.Description != "" {
					fmt.Fprintf(out, "  %s %s\n", label.Name, cli.Muted(label.Description))
					continue
				}
				fmt.Fprintf(out, "  %s\n", label.Name)
			}
			return nil
		},
	}

	return labelsCmd
}
