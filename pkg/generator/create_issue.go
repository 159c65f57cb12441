package generator

import (
	"context"
	"strings"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/template"
)

// CreateIssueParams contains the fields of a new issue. With a template,
// Title completes the template prefix and the other fields override the
// template values when set.
type CreateIssueParams struct {
	Template  template.Key
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Type      issue.Type
}

// CreateIssue creates one issue.
func (g *realGenerator) CreateIssue(ctx context.Context, params CreateIssueParams) (issue.IssueResult, error) {
	draft, err := buildDraft(params)
	if err != nil {
		return issue.IssueResult{}, err
	}

	creds, err := g.Credentials()
	if err != nil {
		return issue.IssueResult{}, err
	}

	f, err := g.forge()
	if err != nil {
		return issue.IssueResult{}, err
	}

	g.deps.Logger.Logf("creating issue %q on %s", draft.Title, creds.FullName())
	return f.CreateIssue(ctx, creds, draft)
}

func buildDraft(params CreateIssueParams) (issue.Draft, error) {
	draft := issue.Draft{
		Title:     strings.TrimSpace(params.Title),
		Body:      strings.TrimSpace(params.Body),
		Labels:    params.Labels,
		Assignees: params.Assignees,
		Type:      params.Type,
	}

	if params.Template != "" {
		tmpl, err := template.Draft(params.Template, params.Title)
		if err != nil {
			return issue.Draft{}, err
		}
		if draft.Body != "" {
			tmpl.Body = draft.Body
		}
		if len(draft.Labels) > 0 {
			tmpl.Labels = draft.Labels
		}
		if len(draft.Assignees) > 0 {
			tmpl.Assignees = draft.Assignees
		}
		if draft.Type != issue.TypeNone {
			tmpl.Type = draft.Type
		}
		draft = tmpl
	}

	if strings.TrimSpace(draft.Title) == "" {
		return issue.Draft{}, ErrTitleRequired
	}

	return draft, nil
}
