package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/gh-issue-generator/configs"
	"github.com/lerenn/gh-issue-generator/pkg/fs"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigPath is the configuration file used when none is given.
const DefaultConfigPath = "~/.gig/config.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
// Files ending in .toml are read and written as TOML, anything else as YAML.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// An empty path selects DefaultConfigPath.
func NewManager(fs fs.FS, configPath string) (Manager, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	expanded, err := fs.ExpandPath(configPath)
	if err != nil {
		return nil, err
	}

	return &realManager{fs: fs, configPath: expanded}, nil
}

// GetConfig loads configuration from the configured path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := c.unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	config = config.withDefaults(c.DefaultConfig())
	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default if
// the file does not exist yet. Unreadable or invalid files are still errors.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path. The file may
// hold tokens, so it is only readable by its owner.
func (c *realManager) SaveConfig(config Config) error {
	unlock, err := c.fs.FileLock(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to lock configuration file: %w", err)
	}
	defer unlock()

	data, err := c.marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the configuration file path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration embedded in the binary.
func (c *realManager) DefaultConfig() Config {
	config := Config{
		APIURL:    "https://api.github.com/",
		BatchFile: "~/.gig/batch.json",
	}

	var embedded Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &embedded); err == nil {
		config = embedded.withDefaults(config)
	}

	// Fall back to the relative path if the home directory is unknown
	if err := config.expandTildes(c.fs); err != nil {
		config.BatchFile = filepath.Join(".gig", "batch.json")
	}

	return config
}

func (c *realManager) isTOML() bool {
	return strings.EqualFold(filepath.Ext(c.configPath), ".toml")
}

func (c *realManager) unmarshal(data []byte, config *Config) error {
	if c.isTOML() {
		return toml.Unmarshal(data, config)
	}
	return yaml.Unmarshal(data, config)
}

func (c *realManager) marshal(config Config) ([]byte, error) {
	if c.isTOML() {
		return toml.Marshal(config)
	}
	return yaml.Marshal(config)
}
