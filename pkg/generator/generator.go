// Package generator implements the gig operations on top of the issue client.
package generator

import (
	"context"
	"os"

	"github.com/lerenn/gh-issue-generator/pkg/config"
	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/dependencies"
	"github.com/lerenn/gh-issue-generator/pkg/forge"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=generator.go -destination=mocks/generator.gen.go -package=mocks

// Generator interface provides the issue generator operations.
type Generator interface {
	// Credentials returns the resolved credentials.
	Credentials() (credentials.Credentials, error)
	// Verify checks the credentials and remembers them on success.
	Verify(ctx context.Context) (bool, error)
	// CreateIssue creates one issue.
	CreateIssue(ctx context.Context, params CreateIssueParams) (issue.IssueResult, error)
	// ListIssues lists the repository issues in state.
	ListIssues(ctx context.Context, state string) (issue.Listing[issue.Issue], error)
	// GetLabels lists the repository labels.
	GetLabels(ctx context.Context) (issue.Listing[issue.Label], error)
	// GetCollaborators lists the repository collaborators.
	GetCollaborators(ctx context.Context) (issue.Listing[issue.Collaborator], error)

	// BatchList returns the pending drafts.
	BatchList() ([]issue.Draft, error)
	// BatchAdd appends a draft to the pending batch and returns its index.
	BatchAdd(params BatchAddParams) (int, error)
	// BatchEdit changes the pending draft at index.
	BatchEdit(index int, params BatchEditParams) (issue.Draft, error)
	// BatchRemove removes the pending draft at index.
	BatchRemove(index int) error
	// BatchClear empties the pending batch.
	BatchClear() error
	// BatchImport replaces the pending batch with a document.
	BatchImport(path string) (int, error)
	// BatchExport writes the pending batch as a document.
	BatchExport(path string) (int, error)
	// SubmitBatch creates the pending drafts.
	SubmitBatch(ctx context.Context, params SubmitBatchParams) (issue.BatchResult, error)

	// Config returns the current configuration.
	Config() (config.Config, error)
	// ClearTokenHistory forgets the remembered tokens.
	ClearTokenHistory(params ClearTokenHistoryParams) error
	// SetLogger sets the logger for this generator.
	SetLogger(logger logger.Logger)
}

// NewGeneratorParams contains parameters for creating a new Generator instance.
// Token, Owner and Repo take precedence over the configuration.
type NewGeneratorParams struct {
	Dependencies *dependencies.Dependencies
	Token        string
	Owner        string
	Repo         string
	// WorkDir is where the origin remote is looked up. Defaults to the
	// current directory.
	WorkDir string
	// Forge defaults to GitHub.
	Forge string
}

type realGenerator struct {
	deps   *dependencies.Dependencies
	params NewGeneratorParams
	holder *credentials.Holder
}

// NewGenerator creates a new Generator instance.
func NewGenerator(params NewGeneratorParams) (Generator, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	if params.Forge == "" {
		params.Forge = forge.GitHubName
	}
	if params.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			params.WorkDir = wd
		}
	}

	return &realGenerator{deps: deps, params: params}, nil
}

// SetLogger sets the logger for this generator.
func (g *realGenerator) SetLogger(logger logger.Logger) {
	g.deps.Logger = logger
}

// Config returns the current configuration.
func (g *realGenerator) Config() (config.Config, error) {
	return g.deps.Config.GetConfigWithFallback()
}

func (g *realGenerator) forge() (forge.Forge, error) {
	return g.deps.Forges.GetForge(g.params.Forge)
}
