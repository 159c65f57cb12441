// Package config provides configuration management functionality for gig.
package config

import (
	"fmt"
	"slices"

	"github.com/lerenn/gh-issue-generator/pkg/fs"
)

// MaxTokenHistory is the number of tokens remembered.
const MaxTokenHistory = 5

// Config represents the application configuration.
type Config struct {
	APIURL       string   `yaml:"api_url" toml:"api_url"`
	Owner        string   `yaml:"owner,omitempty" toml:"owner,omitempty"`
	Repo         string   `yaml:"repo,omitempty" toml:"repo,omitempty"`
	Token        string   `yaml:"token,omitempty" toml:"token,omitempty"`
	TokenHistory []string `yaml:"token_history,omitempty" toml:"token_history,omitempty"`
	BatchFile    string   `yaml:"batch_file" toml:"batch_file"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return ErrAPIURLEmpty
	}
	if c.BatchFile == "" {
		return ErrBatchFileEmpty
	}
	return nil
}

// RememberToken makes token the current token and moves it to the front of
// the history, which keeps at most MaxTokenHistory distinct entries.
func (c *Config) RememberToken(token string) {
	if token == "" {
		return
	}

	c.Token = token
	history := []string{token}
	for _, t := range c.TokenHistory {
		if t != token && len(history) < MaxTokenHistory {
			history = append(history, t)
		}
	}
	c.TokenHistory = history
}

// ClearTokenHistory forgets every remembered token except the current one.
func (c *Config) ClearTokenHistory() {
	c.TokenHistory = nil
}

// HasToken reports whether token is the current token or in the history.
func (c Config) HasToken(token string) bool {
	return token != "" && (c.Token == token || slices.Contains(c.TokenHistory, token))
}

// withDefaults fills the unset fields from defaults.
func (c Config) withDefaults(defaults Config) Config {
	if c.APIURL == "" {
		c.APIURL = defaults.APIURL
	}
	if c.BatchFile == "" {
		c.BatchFile = defaults.BatchFile
	}
	return c
}

// expandTildes expands ~ in path fields.
func (c *Config) expandTildes(fs fs.FS) error {
	batchFile, err := fs.ExpandPath(c.BatchFile)
	if err != nil {
		return fmt.Errorf("failed to expand batch_file: %w", err)
	}
	c.BatchFile = batchFile
	return nil
}
