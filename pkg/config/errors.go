package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrAPIURLEmpty    = errors.New("api_url cannot be empty")
	ErrBatchFileEmpty = errors.New("batch_file cannot be empty")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("gig configuration not found, run 'gig verify' to create it")
)
