// Package config loads the optional YAML configuration file for the CLI.
// Every field has a working default so the tool runs with no file at all;
// API keys are never stored here in practice and fall back to the
// provider environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultModel is used when neither the config file nor the --model flag
// names a provider.
const DefaultModel = "anthropic:claude-sonnet-4-5"

type Config struct {
	// Model is the "provider:model" completion backend.
	Model string `yaml:"model"`
	// APIKey overrides the provider environment variable. Prefer the
	// environment variable; this field exists for air-gapped setups.
	APIKey string `yaml:"api_key"`
	// TimeoutSeconds bounds each outbound completion call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// MaxTokens bounds the model output length.
	MaxTokens int `yaml:"max_tokens"`

	// Content length gate, in bytes.
	MinContentBytes int `yaml:"min_content_bytes"`
	MaxContentBytes int `yaml:"max_content_bytes"`

	// DBPath enables SQLite persistence of reports when non-empty.
	DBPath string `yaml:"db_path"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file and applies defaults to unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 120
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 8192
	}
}

// Timeout returns the per-call deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
