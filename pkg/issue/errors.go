package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidType = errors.New("invalid issue type, expected one of Bug, Feature, Task")
)
