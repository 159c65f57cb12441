package generator

import (
	"context"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
)

// ListIssues lists the repository issues in state.
func (g *realGenerator) ListIssues(ctx context.Context, state string) (issue.Listing[issue.Issue], error) {
	creds, err := g.Credentials()
	if err != nil {
		return issue.Listing[issue.Issue]{}, err
	}

	f, err := g.forge()
	if err != nil {
		return issue.Listing[issue.Issue]{}, err
	}

	return f.ListIssues(ctx, creds, state)
}

// GetLabels lists the repository labels.
func (g *realGenerator) GetLabels(ctx context.Context) (issue.Listing[issue.Label], error) {
	creds, err := g.Credentials()
	if err != nil {
		return issue.Listing[issue.Label]{}, err
	}

	f, err := g.forge()
	if err != nil {
		return issue.Listing[issue.Label]{}, err
	}

	return f.GetLabels(ctx, creds)
}

// GetCollaborators lists the repository collaborators.
func (g *realGenerator) GetCollaborators(ctx context.Context) (issue.Listing[issue.Collaborator], error) {
	creds, err := g.Credentials()
	if err != nil {
		return issue.Listing[issue.Collaborator]{}, err
	}

	f, err := g.forge()
	if err != nil {
		return issue.Listing[issue.Collaborator]{}, err
	}

	return f.GetCollaborators(ctx, creds)
}
