package main

import (
	"github.com/lerenn/gh-issue-generator/cmd/gig/internal/cli"
	"github.com/spf13/cobra"
)

func createVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the token and repository",
		Long: `Verify that the token can access the repository. On success the token,
owner and repository are saved to the configuration and the token is added
to the token history.

Examples:
  gig verify --token ghp_xxx --repo octo/hello
  gig verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := cli.NewGenerator()
			if err != nil {
				return err
			}

			ok, err := gen.Verify(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return cli.ErrVerificationFailed
			}

			creds, err := gen.Credentials()
			if err != nil {
				return err
			}
			cli.Successf(cmd.OutOrStdout(), "Access to %s verified, settings saved", creds.FullName())
			return nil
		},
	}

	return verifyCmd
}
