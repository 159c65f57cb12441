//go:build unit

package batch

import (
	"testing"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_AddEditRemove(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Add(NewDraft()))
	assert.Equal(t, 1, b.Add(issue.Draft{Title: "second", Type: issue.TypeBug}))
	assert.Equal(t, 2, b.Add(issue.Draft{Title: "third", Labels: []string{"docs"}}))
	require.Equal(t, 3, b.Len())

	first, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, issue.Draft{Title: "New issue", Body: "Issue description", Labels: []string{}, Assignees: []string{}}, first)

	second, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, issue.TypeNone, second.Type)
	assert.NotNil(t, second.Labels)

	require.NoError(t, b.Edit(0, issue.Draft{
		Title:     "Crash",
		Body:      "Steps",
		Labels:    issue.SplitList("bug, ui"),
		Assignees: issue.SplitList(""),
	}))
	require.NoError(t, b.Remove(1))

	assert.Equal(t, []issue.Draft{
		{Title: "Crash", Body: "Steps", Labels: []string{"bug", "ui"}, Assignees: []string{}},
		{Title: "third", Labels: []string{"docs"}, Assignees: []string{}},
	}, b.Drafts())
}

func TestBatch_IndexOutOfRange(t *testing.T) {
	b := New(NewDraft())

	for _, index := range []int{-1, 1, 5} {
		_, err := b.Get(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, b.Edit(index, NewDraft()), ErrIndexOutOfRange)
		assert.ErrorIs(t, b.Remove(index), ErrIndexOutOfRange)
	}
	assert.Equal(t, 1, b.Len())
}

func TestBatch_DraftsAreCopies(t *testing.T) {
	b := New(issue.Draft{Title: "a", Labels: []string{"bug"}})

	drafts := b.Drafts()
	drafts[0].Labels[0] = "changed"

	d, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"bug"}, d.Labels)
}

func TestBatch_KeepAndClear(t *testing.T) {
	b := New(issue.Draft{Title: "a"}, issue.Draft{Title: "b"}, issue.Draft{Title: "c"})

	b.Keep(2, 0)
	drafts := b.Drafts()
	require.Len(t, drafts, 2)
	assert.Equal(t, "a", drafts[0].Title)
	assert.Equal(t, "c", drafts[1].Title)

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Drafts())
}
