package generator

import (
	"context"
	"fmt"

	"github.com/lerenn/gh-issue-generator/pkg/batch"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
)

// SubmitBatchParams contains parameters for SubmitBatch.
type SubmitBatchParams struct {
	// SkipConfirmation submits without asking.
	SkipConfirmation bool
}

// SubmitBatch creates the pending drafts in order. After a complete success
// the pending batch is emptied; otherwise only the failed drafts are kept,
// and ErrBatchIncomplete is returned with the result.
func (g *realGenerator) SubmitBatch(ctx context.Context, params SubmitBatchParams) (issue.BatchResult, error) {
	b, err := g.deps.BatchStore.Load()
	if err != nil {
		return issue.BatchResult{}, err
	}
	if b.Len() == 0 {
		return issue.BatchResult{}, batch.ErrEmptyBatch
	}

	creds, err := g.Credentials()
	if err != nil {
		return issue.BatchResult{}, err
	}
	if err := creds.Validate(); err != nil {
		return issue.BatchResult{}, err
	}

	if !params.SkipConfirmation {
		confirmed, err := g.deps.Prompt.PromptForConfirmation(fmt.Sprintf("Create %d issues?", b.Len()), false)
		if err != nil {
			return issue.BatchResult{}, err
		}
		if !confirmed {
			return issue.BatchResult{}, ErrCancelled
		}
	}

	f, err := g.forge()
	if err != nil {
		return issue.BatchResult{}, err
	}

	result, err := f.CreateIssuesFromBatch(ctx, creds, b.Drafts())
	if err != nil {
		return issue.BatchResult{}, err
	}

	if result.Success {
		if err := g.deps.BatchStore.Clear(); err != nil {
			return result, fmt.Errorf("failed to clear pending batch: %w", err)
		}
		return result, nil
	}

	failed := make([]int, 0, len(result.Outcomes))
	for _, o := range result.Failures() {
		failed = append(failed, o.Index)
	}
	b.Keep(failed...)

	if err := g.deps.BatchStore.Save(b); err != nil {
		return result, fmt.Errorf("failed to update pending batch: %w", err)
	}

	return result, fmt.Errorf("%w: %d of %d failed", ErrBatchIncomplete, len(failed), len(result.Outcomes))
}
