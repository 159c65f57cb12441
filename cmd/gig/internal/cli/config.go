// Package cli provides common configuration and utility functions for the gig CLI.
package cli

import (
	"github.com/lerenn/gh-issue-generator/pkg/config"
	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/fs"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
)

var (
	// Quiet suppresses all output except errors and requested listings.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Token overrides the configured access token.
	Token string
	// Owner overrides the repository owner.
	Owner string
	// Name overrides the repository name.
	Name string
	// Repository overrides both owner and name as "owner/name" or a GitHub URL.
	Repository string
)

// NewConfigManager creates a config manager for the selected config file.
func NewConfigManager() (config.Manager, error) {
	return config.NewManager(fs.NewFS(), ConfigPath)
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}

// credentialFlags returns the token, owner and repository given on the
// command line. --repo takes precedence over --owner and --name.
func credentialFlags() (token, owner, repo string, err error) {
	owner, repo = Owner, Name
	if Repository != "" {
		ref, err := credentials.ParseReference(Repository)
		if err != nil {
			return "", "", "", err
		}
		owner, repo = ref.Owner, ref.Repository
	}
	return Token, owner, repo, nil
}
