// ABOUTME: Stride configuration management with XDG paths.
// ABOUTME: Handles server endpoint, identity, cache location, and log level.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultServerURL = "https://stride.2389.dev"

// Config stores stride tool configuration.
type Config struct {
	// ServerURL is the metric store API endpoint.
	ServerURL string `json:"server_url,omitempty"`

	// AuthToken authenticates against the metric store.
	AuthToken string `json:"auth_token,omitempty"`

	// UserID identifies whose metrics are written.
	UserID string `json:"user_id,omitempty"`

	// Username is the display name shown on leaderboards.
	Username string `json:"username,omitempty"`

	// DataDir is the root directory for the local cache.
	// Supports ~ expansion. Defaults to ~/.local/share/stride.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel sets zap verbosity: debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// GetServerURL returns the configured server, defaulting to the hosted one.
func (c *Config) GetServerURL() string {
	if c.ServerURL == "" {
		return defaultServerURL
	}
	return c.ServerURL
}

// GetDataDir returns the cache directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn"
// so CLI output stays clean.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// DefaultDataDir returns the XDG data directory for stride.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "stride")
}

// ConfigPath returns the config file path following XDG spec.
func ConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "stride", "config.json")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads the config file, returning defaults if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes config to a specific path.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
