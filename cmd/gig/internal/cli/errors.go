package cli

import "errors"

// Error definitions for the CLI.
var (
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	ErrVerificationFailed = errors.New("credentials rejected: check the token and the repository")
	ErrIssueNotCreated    = errors.New("issue was not created")
	ErrRequestFailed      = errors.New("request failed")
	ErrInvalidEntryNumber = errors.New("invalid batch entry number")
)
