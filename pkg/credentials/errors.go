package credentials

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every missing-credential error. It is
// reported before any network call is attempted.
var ErrConfiguration = errors.New("incomplete credentials")

// Missing-field errors, all matching ErrConfiguration with errors.Is.
var (
	ErrMissingToken = fmt.Errorf("%w: GitHub token is required", ErrConfiguration)
	ErrMissingOwner = fmt.Errorf("%w: repository owner is required", ErrConfiguration)
	ErrMissingRepo  = fmt.Errorf("%w: repository name is required", ErrConfiguration)
)

// Reference errors.
var (
	ErrInvalidReference = errors.New("invalid repository reference format")
)
