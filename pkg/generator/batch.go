package generator

import (
	"github.com/lerenn/gh-issue-generator/pkg/batch"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/template"
)

// BatchAddParams contains the fields of a new batch entry. Empty title and
// body get the batch defaults, or the template values when one is given.
type BatchAddParams struct {
	Template  template.Key
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// BatchEditParams contains the fields to change. Nil fields are kept.
type BatchEditParams struct {
	Title     *string
	Body      *string
	Labels    *[]string
	Assignees *[]string
}

// BatchList returns the pending drafts.
func (g *realGenerator) BatchList() ([]issue.Draft, error) {
	b, err := g.deps.BatchStore.Load()
	if err != nil {
		return nil, err
	}
	return b.Drafts(), nil
}

// BatchAdd appends a draft to the pending batch and returns its index.
func (g *realGenerator) BatchAdd(params BatchAddParams) (int, error) {
	draft := batch.NewDraft()
	if params.Template != "" {
		tmpl, err := template.Draft(params.Template, params.Title)
		if err != nil {
			return 0, err
		}
		draft = tmpl
	} else if params.Title != "" {
		draft.Title = params.Title
	}
	if params.Body != "" {
		draft.Body = params.Body
	}
	if len(params.Labels) > 0 {
		draft.Labels = params.Labels
	}
	if len(params.Assignees) > 0 {
		draft.Assignees = params.Assignees
	}

	var index int
	err := g.updateBatch(func(b *batch.Batch) error {
		index = b.Add(draft)
		return nil
	})
	return index, err
}

// BatchEdit changes the pending draft at index.
func (g *realGenerator) BatchEdit(index int, params BatchEditParams) (issue.Draft, error) {
	var edited issue.Draft
	err := g.updateBatch(func(b *batch.Batch) error {
		draft, err := b.Get(index)
		if err != nil {
			return err
		}

		if params.Title != nil {
			draft.Title = *params.Title
		}
		if params.Body != nil {
			draft.Body = *params.Body
		}
		if params.Labels != nil {
			draft.Labels = *params.Labels
		}
		if params.Assignees != nil {
			draft.Assignees = *params.Assignees
		}

		edited = draft
		return b.Edit(index, draft)
	})
	return edited, err
}

// BatchRemove removes the pending draft at index.
func (g *realGenerator) BatchRemove(index int) error {
	return g.updateBatch(func(b *batch.Batch) error {
		return b.Remove(index)
	})
}

// BatchClear empties the pending batch.
func (g *realGenerator) BatchClear() error {
	return g.deps.BatchStore.Clear()
}

// BatchImport replaces the pending batch with the document at path.
func (g *realGenerator) BatchImport(path string) (int, error) {
	b, err := g.deps.BatchStore.Import(path)
	if err != nil {
		return 0, err
	}

	if err := g.deps.BatchStore.Save(b); err != nil {
		return 0, err
	}

	g.deps.Logger.Logf("%d issues loaded from %s", b.Len(), path)
	return b.Len(), nil
}

// BatchExport writes the pending batch as a document at path.
func (g *realGenerator) BatchExport(path string) (int, error) {
	b, err := g.deps.BatchStore.Load()
	if err != nil {
		return 0, err
	}

	if err := g.deps.BatchStore.Export(b, path); err != nil {
		return 0, err
	}

	g.deps.Logger.Logf("%d issues saved to %s", b.Len(), path)
	return b.Len(), nil
}

// updateBatch loads the pending batch, applies fn and saves the result.
func (g *realGenerator) updateBatch(fn func(b *batch.Batch) error) error {
	b, err := g.deps.BatchStore.Load()
	if err != nil {
		return err
	}

	if err := fn(b); err != nil {
		return err
	}

	return g.deps.BatchStore.Save(b)
}
