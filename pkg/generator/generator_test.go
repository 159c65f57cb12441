//go:build unit

package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/gh-issue-generator/pkg/batch"
	batchmocks "github.com/lerenn/gh-issue-generator/pkg/batch/mocks"
	"github.com/lerenn/gh-issue-generator/pkg/config"
	configmocks "github.com/lerenn/gh-issue-generator/pkg/config/mocks"
	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/dependencies"
	"github.com/lerenn/gh-issue-generator/pkg/forge"
	forgemocks "github.com/lerenn/gh-issue-generator/pkg/forge/mocks"
	gitmocks "github.com/lerenn/gh-issue-generator/pkg/git/mocks"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
	promptmocks "github.com/lerenn/gh-issue-generator/pkg/prompt/mocks"
	"github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const workDir = "/home/user/src/hello"

var testCreds = credentials.Credentials{Token: "ghp_test", Owner: "octo", Repo: "hello"}

type testEnv struct {
	config *configmocks.MockManager
	forge  *forgemocks.MockForge
	store  *batchmocks.MockStore
	prompt *promptmocks.MockPrompter
	git    *gitmocks.MockGit
	gen    Generator
}

func newTestEnv(t *testing.T, params NewGeneratorParams) *testEnv {
	t.Helper()
	t.Setenv(credentials.TokenEnvVar, "")

	ctrl := gomock.NewController(t)
	env := &testEnv{
		config: configmocks.NewMockManager(ctrl),
		forge:  forgemocks.NewMockForge(ctrl),
		store:  batchmocks.NewMockStore(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		git:    gitmocks.NewMockGit(ctrl),
	}

	forges := forgemocks.NewMockManagerInterface(ctrl)
	forges.EXPECT().GetForge(forge.GitHubName).Return(env.forge, nil).AnyTimes()

	params.Dependencies = dependencies.New().
		WithConfig(env.config).
		WithForges(forges).
		WithBatchStore(env.store).
		WithPrompt(env.prompt).
		WithGit(env.git).
		WithLogger(logger.NewNoopLogger())
	if params.WorkDir == "" {
		params.WorkDir = workDir
	}

	gen, err := NewGenerator(params)
	require.NoError(t, err)
	env.gen = gen

	return env
}

// withConfig makes the configuration return cfg.
func (e *testEnv) withConfig(cfg config.Config) {
	e.config.EXPECT().GetConfigWithFallback().Return(cfg, nil).AnyTimes()
}

func TestNewGenerator_MissingDependencies(t *testing.T) {
	_, err := NewGenerator(NewGeneratorParams{Dependencies: &dependencies.Dependencies{}})
	assert.ErrorIs(t, err, dependencies.ErrFSMissing)
}

func TestCredentials_Precedence(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_flag", Repo: "flagrepo"})
	env.withConfig(config.Config{Token: "ghp_config", Owner: "cfgowner", Repo: "cfgrepo"})

	creds, err := env.gen.Credentials()
	require.NoError(t, err)
	assert.Equal(t, credentials.Credentials{Token: "ghp_flag", Owner: "cfgowner", Repo: "flagrepo"}, creds)
}

func TestCredentials_EnvironmentToken(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Owner: "octo", Repo: "hello"})
	t.Setenv(credentials.TokenEnvVar, "ghp_env")
	env.withConfig(config.Config{})

	creds, err := env.gen.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "ghp_env", creds.Token)
}

func TestCredentials_OriginRemote(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test"})
	env.withConfig(config.Config{})
	env.git.EXPECT().RemoteExists(workDir, "origin").Return(true, nil).Times(1)
	env.git.EXPECT().GetRemoteURL(workDir, "origin").Return("git@github.com:octo/hello.git", nil).Times(1)

	for i := 0; i < 2; i++ {
		creds, err := env.gen.Credentials()
		require.NoError(t, err)
		assert.Equal(t, testCreds, creds)
	}
}

func TestCredentials_OriginRemoteNotGitHub(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo"})
	env.withConfig(config.Config{})
	env.git.EXPECT().RemoteExists(workDir, "origin").Return(true, nil)
	env.git.EXPECT().GetRemoteURL(workDir, "origin").Return("https://gitlab.com/octo/hello.git", nil)

	creds, err := env.gen.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "octo", creds.Owner)
	assert.Empty(t, creds.Repo)
}

func TestCredentials_ConfigError(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.config.EXPECT().GetConfigWithFallback().Return(config.Config{}, config.ErrConfigFileParse)

	_, err := env.gen.Credentials()
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestVerify_SavesSettings(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{APIURL: "https://api.github.com/", TokenHistory: []string{"ghp_old"}})

	env.forge.EXPECT().VerifyCredentials(gomock.Any(), testCreds).Return(true)
	env.config.EXPECT().SaveConfig(config.Config{
		APIURL:       "https://api.github.com/",
		Owner:        "octo",
		Repo:         "hello",
		Token:        "ghp_test",
		TokenHistory: []string{"ghp_test", "ghp_old"},
	}).Return(nil)

	ok, err := env.gen.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Rejected(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})
	env.forge.EXPECT().VerifyCredentials(gomock.Any(), testCreds).Return(false)

	ok, err := env.gen.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_IncompleteCredentials(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	ok, err := env.gen.Verify(context.Background())
	assert.ErrorIs(t, err, credentials.ErrMissingToken)
	assert.False(t, ok)
}

func TestCreateIssue_FromTemplate(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	tmpl, err := template.Get(template.KeyBug)
	require.NoError(t, err)

	env.forge.EXPECT().CreateIssue(gomock.Any(), testCreds, issue.Draft{
		Title:     "[Bug] Login crashes",
		Body:      tmpl.Body,
		Labels:    []string{"bug", "auth"},
		Assignees: []string{},
		Type:      issue.TypeBug,
	}).Return(issue.IssueResult{Success: true, Issue: &issue.Issue{Number: 12}}, nil)

	result, err := env.gen.CreateIssue(context.Background(), CreateIssueParams{
		Template: template.KeyBug,
		Title:    "Login crashes",
		Labels:   []string{"bug", "auth"},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, result.Issue.Number)
}

func TestCreateIssue_Plain(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	apiErr := &forge.APIError{StatusCode: 422, Body: `{"message":"Validation Failed"}`}
	env.forge.EXPECT().CreateIssue(gomock.Any(), testCreds, issue.Draft{
		Title: "Crash",
		Body:  "Steps",
		Type:  issue.TypeTask,
	}).Return(issue.IssueResult{Err: apiErr}, nil)

	result, err := env.gen.CreateIssue(context.Background(), CreateIssueParams{
		Title: "  Crash ",
		Body:  "Steps\n",
		Type:  issue.TypeTask,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, forge.ErrAPI)
}

func TestCreateIssue_Invalid(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})

	_, err := env.gen.CreateIssue(context.Background(), CreateIssueParams{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.gen.CreateIssue(context.Background(), CreateIssueParams{Template: "question"})
	assert.ErrorIs(t, err, template.ErrUnknownTemplate)
}

func TestListings(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	env.forge.EXPECT().ListIssues(gomock.Any(), testCreds, "closed").
		Return(issue.Listing[issue.Issue]{Success: true, Items: []issue.Issue{{Number: 1}}}, nil)
	env.forge.EXPECT().GetLabels(gomock.Any(), testCreds).
		Return(issue.Listing[issue.Label]{Success: true, Items: []issue.Label{{Name: "bug"}}}, nil)
	env.forge.EXPECT().GetCollaborators(gomock.Any(), testCreds).
		Return(issue.Listing[issue.Collaborator]{Success: true, Items: []issue.Collaborator{{Login: "alice"}}}, nil)

	issues, err := env.gen.ListIssues(context.Background(), "closed")
	require.NoError(t, err)
	assert.Len(t, issues.Items, 1)

	labels, err := env.gen.GetLabels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bug", labels.Items[0].Name)

	collaborators, err := env.gen.GetCollaborators(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", collaborators.Items[0].Login)
}

// expectSave captures the batch saved to the store.
func (e *testEnv) expectSave() *[]issue.Draft {
	saved := new([]issue.Draft)
	e.store.EXPECT().Save(gomock.Any()).DoAndReturn(func(b *batch.Batch) error {
		*saved = b.Drafts()
		return nil
	})
	return saved
}

func TestBatchAdd(t *testing.T) {
	tests := []struct {
		name     string
		params   BatchAddParams
		expected issue.Draft
	}{
		{
			name:     "defaults",
			expected: issue.Draft{Title: "New issue", Body: "Issue description", Labels: []string{}, Assignees: []string{}},
		},
		{
			name:     "fields",
			params:   BatchAddParams{Title: "Crash", Labels: []string{"bug"}, Assignees: []string{"alice"}},
			expected: issue.Draft{Title: "Crash", Body: "Issue description", Labels: []string{"bug"}, Assignees: []string{"alice"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, NewGeneratorParams{})
			env.store.EXPECT().Load().Return(batch.New(issue.Draft{Title: "existing"}), nil)
			saved := env.expectSave()

			index, err := env.gen.BatchAdd(tt.params)
			require.NoError(t, err)
			assert.Equal(t, 1, index)
			require.Len(t, *saved, 2)
			assert.Equal(t, tt.expected, (*saved)[1])
		})
	}
}

func TestBatchAdd_Template(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.store.EXPECT().Load().Return(batch.New(), nil)
	saved := env.expectSave()

	_, err := env.gen.BatchAdd(BatchAddParams{Template: template.KeyFeature, Title: "Dark mode"})
	require.NoError(t, err)

	require.Len(t, *saved, 1)
	assert.Equal(t, "[Feature] Dark mode", (*saved)[0].Title)
	assert.Equal(t, []string{"enhancement"}, (*saved)[0].Labels)
	assert.Equal(t, issue.TypeNone, (*saved)[0].Type)
}

func TestBatchEdit(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.store.EXPECT().Load().Return(batch.New(batch.NewDraft()), nil)
	saved := env.expectSave()

	title := "Crash"
	labels := issue.SplitList("bug, ui")
	edited, err := env.gen.BatchEdit(0, BatchEditParams{Title: &title, Labels: &labels})
	require.NoError(t, err)

	expected := issue.Draft{Title: "Crash", Body: "Issue description", Labels: []string{"bug", "ui"}, Assignees: []string{}}
	assert.Equal(t, expected, edited)
	assert.Equal(t, []issue.Draft{expected}, *saved)
}

func TestBatchRemove_OutOfRange(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.store.EXPECT().Load().Return(batch.New(), nil)

	err := env.gen.BatchRemove(0)
	assert.ErrorIs(t, err, batch.ErrIndexOutOfRange)
}

func TestBatchImportExport(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	imported := batch.New(issue.Draft{Title: "a"}, issue.Draft{Title: "b"})

	env.store.EXPECT().Import("issues.json").Return(imported, nil)
	env.store.EXPECT().Save(imported).Return(nil)

	n, err := env.gen.BatchImport("issues.json")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	env.store.EXPECT().Load().Return(imported, nil)
	env.store.EXPECT().Export(imported, "out.yaml").Return(nil)

	n, err = env.gen.BatchExport("out.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCredentials_OriginRepositoryPartial(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Repo: "fork"})
	env.withConfig(config.Config{})
	env.git.EXPECT().RemoteExists(workDir, "origin").Return(true, nil)
	env.git.EXPECT().GetRemoteURL(workDir, "origin").Return("https://github.com/octo/hello", nil)

	creds, err := env.gen.Credentials()
	require.NoError(t, err)
	assert.Equal(t, credentials.Credentials{Token: "ghp_test", Owner: "octo", Repo: "fork"}, creds)
}

func TestBatchClear(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.store.EXPECT().Clear().Return(nil)

	require.NoError(t, env.gen.BatchClear())
}

func TestSubmitBatch_Empty(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.store.EXPECT().Load().Return(batch.New(), nil)

	_, err := env.gen.SubmitBatch(context.Background(), SubmitBatchParams{})
	assert.ErrorIs(t, err, batch.ErrEmptyBatch)
}

func TestSubmitBatch_Cancelled(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})
	env.store.EXPECT().Load().Return(batch.New(batch.NewDraft(), batch.NewDraft()), nil)
	env.prompt.EXPECT().PromptForConfirmation("Create 2 issues?", false).Return(false, nil)

	_, err := env.gen.SubmitBatch(context.Background(), SubmitBatchParams{})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSubmitBatch_MissingCredentials(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test"})
	env.withConfig(config.Config{})
	env.git.EXPECT().RemoteExists(workDir, "origin").Return(false, errors.New("not a git repository"))
	env.store.EXPECT().Load().Return(batch.New(batch.NewDraft()), nil)

	_, err := env.gen.SubmitBatch(context.Background(), SubmitBatchParams{})
	assert.ErrorIs(t, err, credentials.ErrMissingOwner)
}

func TestSubmitBatch_Success(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	pending := batch.New(issue.Draft{Title: "a"}, issue.Draft{Title: "b"})
	env.store.EXPECT().Load().Return(pending, nil)
	env.prompt.EXPECT().PromptForConfirmation("Create 2 issues?", false).Return(true, nil)
	env.forge.EXPECT().CreateIssuesFromBatch(gomock.Any(), testCreds, pending.Drafts()).Return(issue.BatchResult{
		Success: true,
		Outcomes: []issue.Outcome{
			{Index: 0, Issue: &issue.Issue{Number: 1}},
			{Index: 1, Issue: &issue.Issue{Number: 2}},
		},
	}, nil)
	env.store.EXPECT().Clear().Return(nil)

	result, err := env.gen.SubmitBatch(context.Background(), SubmitBatchParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded())
}

func TestSubmitBatch_KeepsFailedDrafts(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{Token: "ghp_test", Owner: "octo", Repo: "hello"})
	env.withConfig(config.Config{})

	drafts := []issue.Draft{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	env.store.EXPECT().Load().Return(batch.New(drafts...), nil)
	env.forge.EXPECT().CreateIssuesFromBatch(gomock.Any(), testCreds, gomock.Len(3)).Return(issue.BatchResult{
		Outcomes: []issue.Outcome{
			{Index: 0, Issue: &issue.Issue{Number: 1}},
			{Index: 1, Err: &forge.APIError{StatusCode: 422}},
			{Index: 2, Issue: &issue.Issue{Number: 2}},
		},
	}, nil)
	saved := env.expectSave()

	result, err := env.gen.SubmitBatch(context.Background(), SubmitBatchParams{SkipConfirmation: true})
	assert.ErrorIs(t, err, ErrBatchIncomplete)
	assert.False(t, result.Success)

	require.Len(t, *saved, 1)
	assert.Equal(t, "b", (*saved)[0].Title)
}

func TestClearTokenHistory(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.withConfig(config.Config{Token: "ghp_a", TokenHistory: []string{"ghp_a", "ghp_b"}})
	env.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(true, nil)
	env.config.EXPECT().SaveConfig(config.Config{Token: "ghp_a"}).Return(nil)

	require.NoError(t, env.gen.ClearTokenHistory(ClearTokenHistoryParams{}))
}

func TestClearTokenHistory_Declined(t *testing.T) {
	env := newTestEnv(t, NewGeneratorParams{})
	env.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)

	assert.ErrorIs(t, env.gen.ClearTokenHistory(ClearTokenHistoryParams{}), ErrCancelled)
}
