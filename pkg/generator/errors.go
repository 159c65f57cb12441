package generator

import "errors"

// Error definitions for generator package.
var (
	ErrTitleRequired   = errors.New("issue title cannot be empty")
	ErrCancelled       = errors.New("operation cancelled")
	ErrBatchIncomplete = errors.New("some issues of the batch could not be created")
)
