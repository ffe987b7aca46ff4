// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/password-guesser/internal/schemas"
	"github.com/jonathan/password-guesser/internal/types"
	embedded "github.com/jonathan/password-guesser/schemas"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Generation
	Depth     string `json:"depth,omitempty"`      // 1-3 or fast, medium, deep
	MinLength int    `json:"min_length,omitempty"` // Shortest candidate emitted
	MaxLength int    `json:"max_length,omitempty"` // Longest candidate emitted

	// Matching
	Workers   int `json:"workers,omitempty"`    // Matcher pool size (0 = MAX_WORKERS or NumCPU)
	ChunkSize int `json:"chunk_size,omitempty"` // Candidates per work unit (0 = automatic)

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL potfile URL
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Render harvest pages in headless Chrome
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// The file is checked against the embedded config schema before decoding.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to parse config JSON: %s is not valid JSON", path)
	}
	if err := schemas.ValidateBytes(embedded.Config, data); err != nil {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are checked after merging with CLI flags.
func (c *Config) Validate() error {
	if c.Depth != "" {
		if _, err := types.ParseDepth(c.Depth); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.MinLength < 0 {
		return fmt.Errorf("config error: 'min_length' must be non-negative")
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("config error: 'max_length' must be non-negative")
	}
	if c.MinLength > 0 && c.MaxLength > 0 && c.MinLength > c.MaxLength {
		return fmt.Errorf("config error: 'min_length' (%d) exceeds 'max_length' (%d)", c.MinLength, c.MaxLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("config error: 'chunk_size' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Depth == "" {
		result.Depth = defaults.Depth
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MinLength == 0 {
		result.MinLength = defaults.MinLength
	}
	if result.MaxLength == 0 {
		result.MaxLength = defaults.MaxLength
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.ChunkSize == 0 {
		result.ChunkSize = defaults.ChunkSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// GenerationConfig resolves the generation settings, falling back to
// types.DefaultGenerationConfig for anything unset.
func (c *Config) GenerationConfig() (types.GenerationConfig, error) {
	cfg := types.DefaultGenerationConfig()
	if c.Depth != "" {
		depth, err := types.ParseDepth(c.Depth)
		if err != nil {
			return cfg, err
		}
		cfg.Depth = depth
	}
	if c.MinLength != 0 {
		cfg.MinLength = c.MinLength
	}
	if c.MaxLength != 0 {
		cfg.MaxLength = c.MaxLength
	}
	return cfg, cfg.Validate()
}
