// Package git provides read access to local Git repositories and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrNotARepository = errors.New("not a git repository")
	ErrRemoteNotFound = errors.New("remote not found")
	ErrRemoteNoURL    = errors.New("remote has no URL")
)
