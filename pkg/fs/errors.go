// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	ErrFileLock       = errors.New("lock")
	ErrPathResolution = errors.New("path resolution failed")
)
