package main

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createCollaboratorsCmd() *cobra.Command {
	collaboratorsCmd := &cobra.Command{
		Use:   "collaborators",
		Short: "List the repository collaborators",
		Long: `List the users that can be assigned to issues of the repository.
Listing collaborators requires push access to the repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}
			if err := cli.RequireCredentials(gen); err != nil {
				return err
			}

			listing, err := gen.GetCollaborators(cmd.Context())
			if err != nil {
				return err
			}
			if !listing.Success {
				return cli.RequestError(listing.Err)
			}

			out := cmd.OutOrStdout()
			if len(listing.Items) == 0 {
				fmt.Fprintln(out, "No collaborators found.")
				return nil
			}
			for _, c := range listing.Items {
				fmt.Fprintf(out, "  %s\n", c.Login)
			}
			return nil
		},
	}

	return collaboratorsCmd
}
