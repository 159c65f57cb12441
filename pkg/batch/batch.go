// Package batch holds the issues pending submission and their document format.
package batch

import (
	"fmt"
	"slices"

	"github.com/lerenn/gh-issue-generator/pkg/issue"
)

// Values given to a new batch entry.
const (
	DefaultTitle = "New issue"
	DefaultBody  = "Issue description"
)

// Batch is an ordered list of drafts waiting to be submitted.
type Batch struct {
	drafts []issue.Draft
}

// New creates a batch holding drafts.
func New(drafts ...issue.Draft) *Batch {
	b := &Batch{}
	for _, d := range drafts {
		b.drafts = append(b.drafts, normalize(d))
	}
	return b
}

// NewDraft returns the draft added when nothing else is given.
func NewDraft() issue.Draft {
	return issue.Draft{
		Title:     DefaultTitle,
		Body:      DefaultBody,
		Labels:    []string{},
		Assignees: []string{},
	}
}

// Add appends a draft and returns its index.
func (b *Batch) Add(draft issue.Draft) int {
	b.drafts = append(b.drafts, normalize(draft))
	return len(b.drafts) - 1
}

// Get returns the draft at index.
func (b *Batch) Get(index int) (issue.Draft, error) {
	if err := b.checkIndex(index); err != nil {
		return issue.Draft{}, err
	}
	return clone(b.drafts[index]), nil
}

// Edit replaces the draft at index.
func (b *Batch) Edit(index int, draft issue.Draft) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.drafts[index] = normalize(draft)
	return nil
}

// Remove deletes the draft at index, shifting the following ones.
func (b *Batch) Remove(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.drafts = slices.Delete(b.drafts, index, index+1)
	return nil
}

// Clear removes every draft.
func (b *Batch) Clear() {
	b.drafts = nil
}

// Len returns the number of drafts.
func (b *Batch) Len() int {
	return len(b.drafts)
}

// Drafts returns a copy of the drafts in order.
func (b *Batch) Drafts() []issue.Draft {
	drafts := make([]issue.Draft, 0, len(b.drafts))
	for _, d := range b.drafts {
		drafts = append(drafts, clone(d))
	}
	return drafts
}

// Keep reduces the batch to the drafts at the given indexes, in batch
// order. It is used to retain the failed drafts after a submission.
func (b *Batch) Keep(indexes ...int) {
	kept := make([]issue.Draft, 0, len(indexes))
	for i, d := range b.drafts {
		if slices.Contains(indexes, i) {
			kept = append(kept, d)
		}
	}
	b.drafts = kept
}

func (b *Batch) checkIndex(index int) error {
	if index < 0 || index >= len(b.drafts) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(b.drafts))
	}
	return nil
}

// normalize drops the issue type, which batch entries do not carry, and
// replaces nil lists by empty ones.
func normalize(d issue.Draft) issue.Draft {
	d = clone(d)
	d.Type = issue.TypeNone
	return d
}

func clone(d issue.Draft) issue.Draft {
	d.Labels = append([]string{}, d.Labels...)
	d.Assignees = append([]string{}, d.Assignees...)
	return d
}
