//go:build unit

package main

import (
	"testing"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/prompt"
	promptmocks "github.com/lerenn/gh-issue-generator/pkg/prompt/mocks"
	"github.com/lerenn/gh-issue-generator/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"verify"},
		{"create"},
		{"list"},
		{"labels"},
		{"collaborators"},
		{"template", "show"},
		{"batch", "submit"},
		{"batch", "edit"},
		{"config", "clear-tokens"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, flag := range []string{"token", "owner", "name", "repo", "config", "verbose", "quiet"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestCreateIssueParams(t *testing.T) {
	params, err := createIssueParams("Bug", "Crash", "", " bug, , auth ", "", "task")
	require.NoError(t, err)
	assert.Equal(t, template.KeyBug, params.Template)
	assert.Equal(t, "Crash", params.Title)
	assert.Equal(t, []string{"bug", "auth"}, params.Labels)
	assert.Equal(t, []string{}, params.Assignees)
	assert.Equal(t, issue.TypeTask, params.Type)

	_, err = createIssueParams("question", "Crash", "", "", "", "")
	assert.ErrorIs(t, err, template.ErrUnknownTemplate)

	_, err = createIssueParams("", "Crash", "", "", "", "epic")
	assert.ErrorIs(t, err, issue.ErrInvalidType)
}

func TestSelectTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := promptmocks.NewMockPrompter(ctrl)

	p.EXPECT().PromptSelect("Choose a template:", gomock.Len(len(template.All()))).
		DoAndReturn(func(_ string, choices []prompt.Choice) (prompt.Choice, error) {
			assert.Equal(t, "bug", choices[0].Key)
			return choices[1], nil
		})

	key, err := selectTemplate(p)
	require.NoError(t, err)
	assert.Equal(t, "feature", key)
}
