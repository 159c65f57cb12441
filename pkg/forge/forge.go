package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the issue operations every forge implementation
// must provide. Implementations hold no credentials: each call receives the
// credentials it acts with.
//
// Operations returning a result report API failures in the result, not in
// the error. The error is reserved for missing credentials, transport
// failures and malformed responses.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// VerifyCredentials reports whether the repository can be read with the
	// given credentials. It never fails: every error maps to false.
	VerifyCredentials(ctx context.Context, creds credentials.Credentials) bool

	// CreateIssue creates one issue from a draft.
	CreateIssue(ctx context.Context, creds credentials.Credentials, draft issue.Draft) (issue.IssueResult, error)

	// CreateIssuesFromBatch creates one issue per draft, sequentially and in
	// order, without stopping on failures.
	CreateIssuesFromBatch(ctx context.Context, creds credentials.Credentials, drafts []issue.Draft) (issue.BatchResult, error)

	// ListIssues lists the repository issues in the given state.
	ListIssues(ctx context.Context, creds credentials.Credentials, state string) (issue.Listing[issue.Issue], error)

	// GetLabels lists the repository labels.
	GetLabels(ctx context.Context, creds credentials.Credentials) (issue.Listing[issue.Label], error)

	// GetCollaborators lists the repository collaborators.
	GetCollaborators(ctx context.Context, creds credentials.Credentials) (issue.Listing[issue.Collaborator], error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name.
	GetForge(name string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
// apiURL overrides the GitHub API endpoint when not empty.
func NewManager(logger logger.Logger, apiURL string) (*Manager, error) {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	if err := m.registerForges(apiURL); err != nil {
		return nil, err
	}

	return m, nil
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges(apiURL string) error {
	opts := []GitHubOption{WithLogger(m.logger)}
	if apiURL != "" {
		opts = append(opts, WithBaseURL(apiURL))
	}

	github, err := NewGitHub(opts...)
	if err != nil {
		return err
	}
	m.forges[github.Name()] = github

	return nil
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}
