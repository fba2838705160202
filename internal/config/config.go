// Package config loads the pathmark configuration. Resolution order is
// defaults, then the YAML config file, then PATHMARK_* environment
// variables, with later layers winning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete pathmark configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search" json:"search"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

// SearchConfig tunes the ranking engine.
type SearchConfig struct {
	// MaxResults caps how many results a query returns.
	MaxResults int `yaml:"max_results" json:"max_results"`

	// CacheSize is the number of distinct queries kept in the result
	// cache before it is cleared.
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

// LoggingConfig configures structured log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// File is the log file path. Empty means stderr.
	File string `yaml:"file" json:"file"`
}

// StorageConfig locates the data directory.
type StorageConfig struct {
	// Dir holds the JSON data files. Empty means the per-user default.
	Dir string `yaml:"dir" json:"dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults: 100,
			CacheSize:  100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultDir returns the per-user config/data directory,
// ~/.config/pathmark unless XDG_CONFIG_HOME overrides the base.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pathmark")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pathmark"
	}
	return filepath.Join(home, ".config", "pathmark")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load builds the effective configuration. A missing file at path is not
// an error; defaults and environment still apply. An empty path means
// the default location.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PATHMARK_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.MaxResults = n
		}
	}
	if v := os.Getenv("PATHMARK_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.CacheSize = n
		}
	}
	if v := os.Getenv("PATHMARK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PATHMARK_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("PATHMARK_DATA_DIR"); v != "" {
		c.Storage.Dir = v
	}
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.CacheSize <= 0 {
		return fmt.Errorf("search.cache_size must be positive, got %d", c.Search.CacheSize)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// DataDir returns the configured data directory, falling back to the
// per-user default.
func (c *Config) DataDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return DefaultDir()
}

// Save writes the configuration to path as YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
