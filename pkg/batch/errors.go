package batch

import "errors"

// Error definitions for batch package.
var (
	ErrEmptyBatch        = errors.New("no issue to create")
	ErrIndexOutOfRange   = errors.New("batch index out of range")
	ErrUnsupportedFormat = errors.New("unsupported batch document format, expected .json, .yaml or .yml")
	ErrDocumentParse     = errors.New("failed to parse batch document")
)
