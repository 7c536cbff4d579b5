// Package config loads NowGo configuration from .nowgo/config.json.
// Environment variables override file values; missing files yield an empty
// config with defaults applied by the Get* accessors.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all nowgo configuration from .nowgo/config.json.
type Config struct {
	// Theme for the TUI ("light" or "dark"); empty means auto-detect.
	Theme string `json:"theme,omitempty"`

	// ExportDir is where exported reports are written.
	ExportDir string `json:"export_dir,omitempty"`

	// Logging controls the categorized debug log files.
	Logging LoggingConfig `json:"logging,omitempty"`
}

// LoggingConfig controls the file loggers under .nowgo/logs/.
type LoggingConfig struct {
	// DebugMode enables log files. When false, logging is a no-op.
	DebugMode bool `json:"debug_mode,omitempty"`

	// Categories filters which log categories are written. Empty means all.
	Categories map[string]bool `json:"categories,omitempty"`
}

// Default values applied by the accessors.
const (
	DefaultTheme     = "dark"
	DefaultExportDir = "exports"
)

// Environment overrides. These win over file values so a single run can be
// re-themed or redirected without editing config.
const (
	EnvTheme     = "NOWGO_THEME"
	EnvExportDir = "NOWGO_EXPORT_DIR"
	EnvDebug     = "NOWGO_DEBUG"
)

// DefaultPath returns the path of the config file under the workspace root.
func DefaultPath() string {
	root, err := FindWorkspaceRoot()
	if err != nil {
		return filepath.Join(".nowgo", "config.json")
	}
	return filepath.Join(root, ".nowgo", "config.json")
}

// FindWorkspaceRoot walks upward looking for a .nowgo directory or go.mod.
// Falls back to the current working directory.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".nowgo")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return originalDir, nil
}

// Load reads configuration from path. A missing file is not an error; it
// yields an empty config so every value falls through to the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to path, creating the directory as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetTheme returns the effective theme.
// Priority: NOWGO_THEME > config file > default.
func (c *Config) GetTheme() string {
	if v := os.Getenv(EnvTheme); v == "light" || v == "dark" {
		return v
	}
	if c != nil && (c.Theme == "light" || c.Theme == "dark") {
		return c.Theme
	}
	return DefaultTheme
}

// GetExportDir returns the effective export directory.
// Priority: NOWGO_EXPORT_DIR > config file > default.
func (c *Config) GetExportDir() string {
	if v := os.Getenv(EnvExportDir); v != "" {
		return v
	}
	if c != nil && c.ExportDir != "" {
		return c.ExportDir
	}
	return DefaultExportDir
}

// GetDebugMode returns whether debug logging is enabled.
// Priority: NOWGO_DEBUG > config file (default false).
func (c *Config) GetDebugMode() bool {
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if c != nil {
		return c.Logging.DebugMode
	}
	return false
}

// Global loads config from the default path.
func Global() (*Config, error) {
	return Load(DefaultPath())
}
