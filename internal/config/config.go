// Package config loads salesdash configuration from YAML with environment
// overrides. Missing files yield defaults, so a fresh install runs with no
// setup beyond credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all salesdash configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	API     APIConfig     `yaml:"api"`
	State   StateConfig   `yaml:"state"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig points at the remote ERP host.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// StateConfig locates persisted local state (session, logs).
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig tunes the dashboard presentation.
type UIConfig struct {
	PageSize int    `yaml:"page_size"` // rows per table page
	Theme    string `yaml:"theme"`     // auto, light, dark
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Categories map[string]bool `yaml:"categories"`
}

// DefaultStateDir is ~/.salesdash, falling back to the working directory
// when the home dir cannot be resolved.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".salesdash"
	}
	return filepath.Join(home, ".salesdash")
}

// DefaultPath is the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultStateDir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "salesdash",
		Version: "1.2.0",

		API: APIConfig{
			BaseURL: "https://erp-r0hx.onrender.com/api",
			Timeout: "15s",
		},
		State: StateConfig{
			Dir: DefaultStateDir(),
		},
		UI: UIConfig{
			PageSize: 10,
			Theme:    "auto",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load reads configuration from a YAML file, returning defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
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

// applyEnvOverrides lets the environment beat the file, which beats the
// defaults.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SALESDASH_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("SALESDASH_API_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv("SALESDASH_STATE_DIR"); v != "" {
		c.State.Dir = v
	}
	if v := os.Getenv("SALESDASH_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UI.PageSize = n
		}
	}
	if v := os.Getenv("SALESDASH_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SALESDASH_DEBUG"); v != "" {
		c.Logging.DebugMode = v == "1" || v == "true"
	}
	if v := os.Getenv("SALESDASH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
