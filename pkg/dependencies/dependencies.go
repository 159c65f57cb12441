// Package dependencies provides a centralized dependency container for gig.
package dependencies

import (
	"errors"

	"github.com/lerenn/gh-issue-generator/pkg/batch"
	"github.com/lerenn/gh-issue-generator/pkg/config"
	"github.com/lerenn/gh-issue-generator/pkg/forge"
	"github.com/lerenn/gh-issue-generator/pkg/fs"
	"github.com/lerenn/gh-issue-generator/pkg/git"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
	"github.com/lerenn/gh-issue-generator/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing         = errors.New("fs dependency is required but not set")
	ErrGitMissing        = errors.New("git dependency is required but not set")
	ErrConfigMissing     = errors.New("config dependency is required but not set")
	ErrLoggerMissing     = errors.New("logger dependency is required but not set")
	ErrPromptMissing     = errors.New("prompt dependency is required but not set")
	ErrForgesMissing     = errors.New("forge manager dependency is required but not set")
	ErrBatchStoreMissing = errors.New("batch store dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS         fs.FS
	Git        git.Git
	Config     config.Manager
	Logger     logger.Logger
	Prompt     prompt.Prompter
	Forges     forge.ManagerInterface
	BatchStore batch.Store
}

// New creates a new Dependencies instance with sensible defaults.
// Config, Forges and BatchStore depend on the configuration file and are
// set with the With* methods.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForges sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForges(forges forge.ManagerInterface) *Dependencies {
	d.Forges = forges
	return d
}

// WithBatchStore sets the batch store and returns the instance for chaining.
func (d *Dependencies) WithBatchStore(store batch.Store) *Dependencies {
	d.BatchStore = store
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Forges, ErrForgesMissing},
		{d.BatchStore, ErrBatchStoreMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
