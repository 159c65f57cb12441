package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/google/go-querystring/query"
	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// DefaultAPIURL is the GitHub REST API endpoint.
	DefaultAPIURL = "https://api.github.com/"

	acceptHeader = "application/vnd.github.v3+json"
	// tokenType makes oauth2 send "Authorization: token <token>".
	tokenType = "token"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	baseURL   *url.URL
	transport http.RoundTripper
	logger    logger.Logger
}

// GitHubOption configures a GitHub forge.
type GitHubOption func(*GitHub) error

// WithBaseURL sets the API endpoint, for GitHub Enterprise or tests.
func WithBaseURL(rawURL string) GitHubOption {
	return func(g *GitHub) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, rawURL)
		}
		g.baseURL = u
		return nil
	}
}

// WithTransport sets the HTTP transport requests are sent through.
func WithTransport(transport http.RoundTripper) GitHubOption {
	return func(g *GitHub) error {
		g.transport = transport
		return nil
	}
}

// WithLogger sets the logger requests are reported to.
func WithLogger(l logger.Logger) GitHubOption {
	return func(g *GitHub) error {
		g.logger = l
		return nil
	}
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(opts ...GitHubOption) (*GitHub, error) {
	g := &GitHub{
		transport: http.DefaultTransport,
		logger:    logger.NewNoopLogger(),
	}
	if err := WithBaseURL(DefaultAPIURL)(g); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// VerifyCredentials reports whether the repository is readable with creds.
func (g *GitHub) VerifyCredentials(ctx context.Context, creds credentials.Credentials) bool {
	if !creds.Complete() {
		return false
	}

	status, _, err := g.send(ctx, creds, http.MethodGet, repoPath(creds), nil)
	if err != nil {
		g.logger.Logf("credential verification failed: %v", err)
		return false
	}

	return status == http.StatusOK
}

// createIssueRequest is the create issue payload. go-github's IssueRequest
// has no issue type field.
type createIssueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Type      string   `json:"type,omitempty"`
}

// CreateIssue creates one issue from draft.
func (g *GitHub) CreateIssue(
	ctx context.Context,
	creds credentials.Credentials,
	draft issue.Draft,
) (issue.IssueResult, error) {
	if err := creds.Validate(); err != nil {
		return issue.IssueResult{}, err
	}

	payload := createIssueRequest{
		Title:     draft.Title,
		Body:      draft.Body,
		Labels:    draft.Labels,
		Assignees: draft.Assignees,
		Type:      string(draft.Type),
	}

	status, raw, err := g.send(ctx, creds, http.MethodPost, repoPath(creds, "issues"), payload)
	if err != nil {
		return issue.IssueResult{}, err
	}
	if status != http.StatusCreated {
		return issue.IssueResult{Err: newAPIError(status, raw)}, nil
	}

	var created github.Issue
	if err := json.Unmarshal(raw, &created); err != nil {
		return issue.IssueResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	rec := toIssue(&created)
	return issue.IssueResult{Success: true, Issue: &rec}, nil
}

// CreateIssuesFromBatch creates one issue per draft, in order.
func (g *GitHub) CreateIssuesFromBatch(
	ctx context.Context,
	creds credentials.Credentials,
	drafts []issue.Draft,
) (issue.BatchResult, error) {
	return CreateBatch(ctx, g, creds, drafts, g.logger)
}

type listIssuesOptions struct {
	State string `url:"state"`
}

// ListIssues lists issues in state open, closed or all. Pull requests are
// included and flagged.
func (g *GitHub) ListIssues(
	ctx context.Context,
	creds credentials.Credentials,
	state string,
) (issue.Listing[issue.Issue], error) {
	if !issue.ValidState(state) {
		return issue.Listing[issue.Issue]{}, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	values, err := query.Values(listIssuesOptions{State: state})
	if err != nil {
		return issue.Listing[issue.Issue]{}, err
	}

	return list(ctx, g, creds, repoPath(creds, "issues")+"?"+values.Encode(), toIssue)
}

// GetLabels lists the repository labels.
func (g *GitHub) GetLabels(ctx context.Context, creds credentials.Credentials) (issue.Listing[issue.Label], error) {
	return list(ctx, g, creds, repoPath(creds, "labels"), toLabel)
}

// GetCollaborators lists the repository collaborators.
func (g *GitHub) GetCollaborators(
	ctx context.Context,
	creds credentials.Credentials,
) (issue.Listing[issue.Collaborator], error) {
	return list(ctx, g, creds, repoPath(creds, "collaborators"), toCollaborator)
}

// list fetches a JSON array and converts its elements. Incomplete
// credentials give an empty unsuccessful listing without any request.
func list[W, T any](
	ctx context.Context,
	g *GitHub,
	creds credentials.Credentials,
	urlStr string,
	convert func(*W) T,
) (issue.Listing[T], error) {
	if !creds.Complete() {
		return issue.Listing[T]{Items: []T{}}, nil
	}

	status, raw, err := g.send(ctx, creds, http.MethodGet, urlStr, nil)
	if err != nil {
		return issue.Listing[T]{}, err
	}
	if status != http.StatusOK {
		return issue.Listing[T]{Items: []T{}, Err: newAPIError(status, raw)}, nil
	}

	var wire []*W
	if err := json.Unmarshal(raw, &wire); err != nil {
		return issue.Listing[T]{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	items := make([]T, 0, len(wire))
	for _, w := range wire {
		if w != nil {
			items = append(items, convert(w))
		}
	}

	return issue.Listing[T]{Success: true, Items: items}, nil
}

// send performs one request and returns the status code with the raw body,
// whatever the status. Only failures to get a response are errors.
func (g *GitHub) send(
	ctx context.Context,
	creds credentials.Credentials,
	method, urlStr string,
	body interface{},
) (int, []byte, error) {
	op := method + " " + urlStr
	client := g.client(creds.Token)

	req, err := client.NewRequest(method, urlStr, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request %s: %w", op, err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := client.BareDo(ctx, req)
	if resp == nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	g.logger.Logf("%s -> %d", op, resp.StatusCode)

	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		return resp.StatusCode, accepted.Raw, nil
	}

	// go-github restores the body after reading error responses.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}

	return resp.StatusCode, raw, nil
}

// client builds a client for a single call, so no state is shared between
// calls made with different credentials.
func (g *GitHub) client(token string) *github.Client {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: tokenType}),
			Base:   g.transport,
		},
	}

	client := github.NewClient(httpClient)
	u := *g.baseURL
	client.BaseURL = &u

	return client
}

// repoPath joins escaped segments without cleaning them, so every request
// stays under repos/{owner}/{repo}.
func repoPath(creds credentials.Credentials, elems ...string) string {
	parts := append([]string{"repos", url.PathEscape(creds.Owner), url.PathEscape(creds.Repo)}, elems...)
	return strings.Join(parts, "/")
}

func toIssue(i *github.Issue) issue.Issue {
	result := issue.Issue{
		Number:      i.GetNumber(),
		Title:       i.GetTitle(),
		Body:        i.GetBody(),
		State:       i.GetState(),
		HTMLURL:     i.GetHTMLURL(),
		Author:      i.GetUser().GetLogin(),
		PullRequest: i.IsPullRequest(),
	}

	for _, l := range i.Labels {
		result.Labels = append(result.Labels, l.GetName())
	}
	for _, a := range i.Assignees {
		result.Assignees = append(result.Assignees, a.GetLogin())
	}

	return result
}

func toLabel(l *github.Label) issue.Label {
	return issue.Label{
		Name:        l.GetName(),
		Color:       l.GetColor(),
		Description: l.GetDescription(),
	}
}

func toCollaborator(u *github.User) issue.Collaborator {
	return issue.Collaborator{
		Login:   u.GetLogin(),
		HTMLURL: u.GetHTMLURL(),
	}
}
