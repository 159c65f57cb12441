package cli

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/pkg/batch"
	"github.com/lerenn/gh-issue-generator/pkg/config"
	"github.com/lerenn/gh-issue-generator/pkg/dependencies"
	"github.com/lerenn/gh-issue-generator/pkg/forge"
	"github.com/lerenn/gh-issue-generator/pkg/fs"
	"github.com/lerenn/gh-issue-generator/pkg/generator"
	"github.com/lerenn/gh-issue-generator/pkg/prompt"
)

// NewGenerator creates a Generator wired with the real dependencies and the
// credential flags.
func NewGenerator() (generator.Generator, error) {
	fsInstance := fs.NewFS()

	configManager, err := config.NewManager(fsInstance, ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	log := NewLogger()
	log.Logf("using configuration %s", configManager.GetConfigPath())

	forges, err := forge.NewManager(log, cfg.APIURL)
	if err != nil {
		return nil, err
	}

	token, owner, repo, err := credentialFlags()
	if err != nil {
		return nil, err
	}

	return generator.NewGenerator(generator.NewGeneratorParams{
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithConfig(configManager).
			WithLogger(log).
			WithPrompt(prompt.NewPrompt()).
			WithForges(forges).
			WithBatchStore(batch.NewStore(fsInstance, cfg.BatchFile)),
		Token: token,
		Owner: owner,
		Repo:  repo,
	})
}

// RequireCredentials returns the configuration error of incomplete
// credentials, so listings fail with a precise message.
func RequireCredentials(gen generator.Generator) error {
	creds, err := gen.Credentials()
	if err != nil {
		return err
	}
	return creds.Validate()
}
