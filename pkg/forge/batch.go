package forge

import (
	"context"

	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/issue"
	"github.com/lerenn/gh-issue-generator/pkg/logger"
)

// IssueCreator creates a single issue.
type IssueCreator interface {
	CreateIssue(ctx context.Context, creds credentials.Credentials, draft issue.Draft) (issue.IssueResult, error)
}

// CreateBatch submits drafts one at a time through creator. An empty batch
// is a failure. Every draft is attempted; per-draft API and transport
// failures are recorded in the outcome and the batch goes on. Missing
// credentials abort before the first call.
//
// Only title, body, labels and assignees are forwarded: the issue type of a
// draft is not sent in batch mode.
func CreateBatch(
	ctx context.Context,
	creator IssueCreator,
	creds credentials.Credentials,
	drafts []issue.Draft,
	log logger.Logger,
) (issue.BatchResult, error) {
	result := issue.BatchResult{Outcomes: make([]issue.Outcome, 0, len(drafts))}
	if len(drafts) == 0 {
		return result, nil
	}

	if err := creds.Validate(); err != nil {
		return issue.BatchResult{}, err
	}

	result.Success = true
	for i, draft := range drafts {
		outcome := issue.Outcome{Index: i, Draft: draft}

		res, err := creator.CreateIssue(ctx, creds, issue.Draft{
			Title:     draft.Title,
			Body:      draft.Body,
			Labels:    draft.Labels,
			Assignees: draft.Assignees,
		})
		switch {
		case err != nil:
			outcome.Err = err
		case !res.Success:
			outcome.Err = res.Err
		default:
			outcome.Issue = res.Issue
		}

		if outcome.Success() {
			log.Logf("batch %d/%d: created #%d", i+1, len(drafts), outcome.Issue.Number)
		} else {
			result.Success = false
			log.Logf("batch %d/%d: failed to create %q: %v", i+1, len(drafts), draft.Title, outcome.Err)
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}
