//go:build unit

package forge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport counts round trips before delegating to next.
type countingTransport struct {
	calls atomic.Int32
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return c.next.RoundTrip(req)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

var validCreds = credentials.Credentials{Token: "ghp_test", Owner: "octo", Repo: "hello"}

// setup starts a test server and returns a GitHub forge pointing at it,
// with a transport counting the requests sent.
func setup(t *testing.T, handler http.HandlerFunc) (*GitHub, *countingTransport) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport := &countingTransport{next: http.DefaultTransport}
	g, err := NewGitHub(WithBaseURL(server.URL), WithTransport(transport))
	require.NoError(t, err)

	return g, transport
}

func unreachable(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL)
	}
}

func TestGitHub_Name(t *testing.T) {
	g, err := NewGitHub()
	require.NoError(t, err)
	assert.Equal(t, "github", g.Name())
	assert.Equal(t, DefaultAPIURL, g.baseURL.String())
}

func TestGitHub_CreateIssue_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		creds    credentials.Credentials
		expected error
	}{
		{"missing token", credentials.Credentials{Owner: "octo", Repo: "hello"}, credentials.ErrMissingToken},
		{"missing owner", credentials.Credentials{Token: "t", Repo: "hello"}, credentials.ErrMissingOwner},
		{"missing repo", credentials.Credentials{Token: "t", Owner: "octo"}, credentials.ErrMissingRepo},
		{"dot-dot repo", credentials.Credentials{Token: "t", Owner: "octo", Repo: ".."}, credentials.ErrInvalidReference},
		{"dot owner", credentials.Credentials{Token: "t", Owner: ".", Repo: "hello"}, credentials.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, transport := setup(t, unreachable(t))

			result, err := g.CreateIssue(context.Background(), tt.creds, issue.Draft{Title: "t"})
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, credentials.ErrConfiguration)
			assert.NotErrorIs(t, err, ErrAPI)
			assert.False(t, result.Success)
			assert.Zero(t, transport.calls.Load())
		})
	}
}

func TestGitHub_CreateIssue_OmitsEmptyFields(t *testing.T) {
	var payload map[string]interface{}
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/octo/hello/issues", r.URL.Path)
		assert.Equal(t, "token ghp_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number":7,"title":"Crash","state":"open","html_url":"https://github.com/octo/hello/issues/7"}`)
	})

	result, err := g.CreateIssue(context.Background(), validCreds, issue.Draft{
		Title:     "Crash",
		Body:      "",
		Labels:    []string{},
		Assignees: nil,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.Issue)

	assert.Equal(t, map[string]interface{}{"title": "Crash", "body": ""}, payload)
	assert.Equal(t, 7, result.Issue.Number)
	assert.Equal(t, "open", result.Issue.State)
	assert.Equal(t, "https://github.com/octo/hello/issues/7", result.Issue.HTMLURL)
}

func TestGitHub_CreateIssue_AllFields(t *testing.T) {
	var payload createIssueRequest
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"number":8,"title":"[Bug] Crash","labels":[{"name":"bug"}],"assignees":[{"login":"alice"}]}`)
	})

	result, err := g.CreateIssue(context.Background(), validCreds, issue.Draft{
		Title:     "[Bug] Crash",
		Body:      "Steps",
		Labels:    []string{"bug"},
		Assignees: []string{"alice"},
		Type:      issue.TypeBug,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, createIssueRequest{
		Title:     "[Bug] Crash",
		Body:      "Steps",
		Labels:    []string{"bug"},
		Assignees: []string{"alice"},
		Type:      "Bug",
	}, payload)
	assert.Equal(t, []string{"bug"}, result.Issue.Labels)
	assert.Equal(t, []string{"alice"}, result.Issue.Assignees)
}

func TestGitHub_CreateIssue_APIFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"validation failed", http.StatusUnprocessableEntity, `{"message":"Validation Failed"}`},
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`},
		{"ok instead of created", http.StatusOK, `{"number":1}`},
		{"non json body", http.StatusBadGateway, `upstream down`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, transport := setup(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			result, err := g.CreateIssue(context.Background(), validCreds, issue.Draft{Title: "t"})
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Nil(t, result.Issue)

			var apiErr *APIError
			require.True(t, errors.As(result.Err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.body, apiErr.Body)
			assert.EqualValues(t, 1, transport.calls.Load())
		})
	}
}

func TestGitHub_CreateIssue_TransportError(t *testing.T) {
	g, err := NewGitHub(WithTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})))
	require.NoError(t, err)

	_, err = g.CreateIssue(context.Background(), validCreds, issue.Draft{Title: "t"})
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorContains(t, err, "connection refused")
}

func TestGitHub_CreateIssuesFromBatch_Empty(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	for _, drafts := range [][]issue.Draft{nil, {}} {
		result, err := g.CreateIssuesFromBatch(context.Background(), validCreds, drafts)
		require.NoError(t, err)
		assert.Empty(t, result.Outcomes)
		assert.False(t, result.Success)
	}
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_CreateIssuesFromBatch_SecondFails(t *testing.T) {
	var calls atomic.Int32
	var titles []string
	var payloads []map[string]interface{}
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payloads = append(payloads, payload)
		titles = append(titles, payload["title"].(string))

		n := calls.Add(1)
		if n == 2 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"message":"Validation Failed"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"number":%d,"title":%q}`, n, payload["title"])
	})

	drafts := []issue.Draft{
		{Title: "first", Body: "a", Type: issue.TypeBug},
		{Title: "second", Body: "b", Labels: []string{"bug"}},
		{Title: "third", Body: "c", Assignees: []string{"alice"}},
	}

	result, err := g.CreateIssuesFromBatch(context.Background(), validCreds, drafts)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"first", "second", "third"}, titles)
	require.Len(t, result.Outcomes, 3)

	for i, outcome := range result.Outcomes {
		assert.Equal(t, i, outcome.Index)
		assert.Equal(t, drafts[i], outcome.Draft)
	}
	assert.True(t, result.Outcomes[0].Success())
	assert.False(t, result.Outcomes[1].Success())
	assert.True(t, result.Outcomes[2].Success())
	assert.ErrorIs(t, result.Outcomes[1].Err, ErrValidation)
	assert.Equal(t, 2, result.Succeeded())

	// Issue types are not sent in batch mode.
	assert.NotContains(t, payloads[0], "type")
}

func TestGitHub_CreateIssuesFromBatch_MissingCredentials(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	_, err := g.CreateIssuesFromBatch(context.Background(), credentials.Credentials{Token: "t"},
		[]issue.Draft{{Title: "t"}})
	assert.ErrorIs(t, err, credentials.ErrMissingOwner)
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_VerifyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
	}{
		{"ok", http.StatusOK, true},
		{"not found", http.StatusNotFound, false},
		{"unauthorized", http.StatusUnauthorized, false},
		{"no content", http.StatusNoContent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/repos/octo/hello", r.URL.Path)
				assert.Equal(t, "token ghp_test", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			})

			assert.Equal(t, tt.expected, g.VerifyCredentials(context.Background(), validCreds))
		})
	}
}

func TestGitHub_VerifyCredentials_Incomplete(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	assert.False(t, g.VerifyCredentials(context.Background(), credentials.Credentials{Owner: "o", Repo: "r"}))
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_VerifyCredentials_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	g, err := NewGitHub(WithBaseURL(url))
	require.NoError(t, err)

	assert.False(t, g.VerifyCredentials(context.Background(), validCreds))
}

func TestGitHub_ListIssues(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/hello/issues", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		fmt.Fprint(w, `[
			{"number":1,"title":"Bug","state":"open","html_url":"u1","user":{"login":"alice"}},
			{"number":2,"title":"PR","state":"closed","html_url":"u2","pull_request":{"url":"p"}}
		]`)
	})

	listing, err := g.ListIssues(context.Background(), validCreds, issue.StateAll)
	require.NoError(t, err)
	require.True(t, listing.Success)
	require.Len(t, listing.Items, 2)

	assert.Equal(t, issue.Issue{Number: 1, Title: "Bug", State: "open", HTMLURL: "u1", Author: "alice"}, listing.Items[0])
	assert.True(t, listing.Items[1].PullRequest)
}

func TestGitHub_ListIssues_NotFound(t *testing.T) {
	const body = `{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "state=all", r.URL.RawQuery)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, body)
	})

	listing, err := g.ListIssues(context.Background(), validCreds, issue.StateAll)
	require.NoError(t, err)
	assert.False(t, listing.Success)
	assert.Empty(t, listing.Items)

	var apiErr *APIError
	require.True(t, errors.As(listing.Err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, body, apiErr.Body)
}

func TestGitHub_ListIssues_IncompleteCredentials(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	listing, err := g.ListIssues(context.Background(), credentials.Credentials{Token: "t", Owner: "o"}, issue.StateOpen)
	require.NoError(t, err)
	assert.False(t, listing.Success)
	assert.NotNil(t, listing.Items)
	assert.Empty(t, listing.Items)
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_ListIssues_InvalidState(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	_, err := g.ListIssues(context.Background(), validCreds, "merged")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_ListIssues_TransportError(t *testing.T) {
	cause := errors.New("tls handshake timeout")
	g, err := NewGitHub(WithTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, cause
	})))
	require.NoError(t, err)

	_, err = g.ListIssues(context.Background(), validCreds, issue.StateOpen)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
}

func TestGitHub_ListIssues_MalformedBody(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"not":"an array"}`)
	})

	_, err := g.ListIssues(context.Background(), validCreds, issue.StateOpen)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGitHub_GetLabels(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/hello/labels", r.URL.Path)
		fmt.Fprint(w, `[{"name":"bug","color":"d73a4a","description":"Something isn't working"},{"name":"enhancement"}]`)
	})

	listing, err := g.GetLabels(context.Background(), validCreds)
	require.NoError(t, err)
	require.True(t, listing.Success)
	assert.Equal(t, []issue.Label{
		{Name: "bug", Color: "d73a4a", Description: "Something isn't working"},
		{Name: "enhancement"},
	}, listing.Items)
}

func TestGitHub_GetCollaborators(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/hello/collaborators", r.URL.Path)
		fmt.Fprint(w, `[{"login":"alice","html_url":"https://github.com/alice"}]`)
	})

	listing, err := g.GetCollaborators(context.Background(), validCreds)
	require.NoError(t, err)
	require.True(t, listing.Success)
	assert.Equal(t, []issue.Collaborator{{Login: "alice", HTMLURL: "https://github.com/alice"}}, listing.Items)
}

func TestGitHub_GetCollaborators_Forbidden(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"Must have push access to view repository collaborators."}`)
	})

	listing, err := g.GetCollaborators(context.Background(), validCreds)
	require.NoError(t, err)
	assert.False(t, listing.Success)
	assert.ErrorIs(t, listing.Err, ErrForbidden)
}

func TestGitHub_Accepted(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, `{"queued":true}`)
	})

	status, raw, err := g.send(context.Background(), validCreds, http.MethodGet, repoPath(validCreds), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, `{"queued":true}`, string(raw))
}

func TestRepoPath(t *testing.T) {
	creds := credentials.Credentials{Owner: "octo", Repo: "hello"}
	assert.Equal(t, "repos/octo/hello", repoPath(creds))
	assert.Equal(t, "repos/octo/hello/issues", repoPath(creds, "issues"))

	// Segments are escaped and never cleaned away.
	assert.Equal(t, "repos/octo/../labels", repoPath(credentials.Credentials{Owner: "octo", Repo: ".."}, "labels"))
	assert.Equal(t, "repos/octo/a%2Fb/labels", repoPath(credentials.Credentials{Owner: "octo", Repo: "a/b"}, "labels"))
}

func TestGitHub_DotSegmentRepository(t *testing.T) {
	g, transport := setup(t, unreachable(t))
	creds := credentials.Credentials{Token: "t", Owner: "octo", Repo: ".."}

	labels, err := g.GetLabels(context.Background(), creds)
	require.NoError(t, err)
	assert.False(t, labels.Success)
	assert.Empty(t, labels.Items)

	issues, err := g.ListIssues(context.Background(), creds, issue.StateAll)
	require.NoError(t, err)
	assert.False(t, issues.Success)

	assert.False(t, g.VerifyCredentials(context.Background(), creds))
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_Send_RequestBuildError(t *testing.T) {
	g, transport := setup(t, unreachable(t))

	_, _, err := g.send(context.Background(), validCreds, http.MethodPost, repoPath(validCreds, "issues"), make(chan int))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "failed to build request")
	assert.Zero(t, transport.calls.Load())
}

func TestGitHub_CreateIssue_UnexpectedSuccessStatus(t *testing.T) {
	g, _ := setup(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"number":1}`)
	})

	result, err := g.CreateIssue(context.Background(), validCreds, issue.Draft{Title: "t", Body: "b"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Issue)

	var apiErr *APIError
	require.ErrorAs(t, result.Err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, `{"number":1}`, apiErr.Body)
}
