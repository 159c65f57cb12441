package template

import "errors"

// ErrUnknownTemplate is returned for a key outside the catalog.
var ErrUnknownTemplate = errors.New("unknown template, expected bug, feature or documentation")
