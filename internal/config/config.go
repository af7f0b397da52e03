// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Web-Plus-Academy/lms-admin/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete console configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Session SessionConfig `toml:"session"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// ServerConfig locates the backend collaborator.
type ServerConfig struct {
	// BaseURL is the root of the LMS REST backend.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds every non-submission request.
	TimeoutSecs int `toml:"timeout_secs"`
	// RequestsPerSec caps the client-side request rate (0 = default).
	RequestsPerSec float64 `toml:"requests_per_sec"`
}

// SessionConfig controls the admin session lifetime.
type SessionConfig struct {
	// LifetimeHours is how long a login remains valid. Default 12.
	LifetimeHours int `toml:"lifetime_hours"`
}

// StorageConfig locates local client state.
type StorageConfig struct {
	// DataDir holds state.db and key material (default ~/.lms-admin).
	DataDir string `toml:"data_dir"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is "dark", "light", or "auto".
	Theme string `toml:"theme"`
	// CompactMode trims vertical padding on small terminals.
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSecs:    30,
			RequestsPerSec: 10,
		},
		Session: SessionConfig{
			LifetimeHours: 12,
		},
		Storage: StorageConfig{
			DataDir: "", // resolved lazily by DataDir()
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Dir returns the console's configuration directory (~/.lms-admin).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".lms-admin"), nil
}

// Path returns the config file location (~/.lms-admin/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir resolves the state directory, honoring an explicit override.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return Dir()
}

// SessionLifetime returns the configured lifetime as a duration.
func (c *Config) SessionLifetime() time.Duration {
	return time.Duration(c.Session.LifetimeHours) * time.Hour
}

// ServerTimeout returns the request timeout as a duration.
func (c *Config) ServerTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file if present, overlays environment variables,
// and validates the result. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit file location (used by tests).
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config back to its default location.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# lms-admin console configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFileWithDir(path, buf.Bytes(), 0600, 0700)
}

// ApplyEnvOverrides overlays LMS_ADMIN_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("LMS_ADMIN_SERVER_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("LMS_ADMIN_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.TimeoutSecs = n
		}
	}
	if v := os.Getenv("LMS_ADMIN_SESSION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Session.LifetimeHours = n
		}
	}
	if v := os.Getenv("LMS_ADMIN_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("LMS_ADMIN_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// fillDefaults patches zero values left by a sparse config file.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = def.Server.BaseURL
	}
	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = def.Server.TimeoutSecs
	}
	if c.Server.RequestsPerSec <= 0 {
		c.Server.RequestsPerSec = def.Server.RequestsPerSec
	}
	if c.Session.LifetimeHours <= 0 {
		c.Session.LifetimeHours = def.Session.LifetimeHours
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// Validate rejects configurations the console cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.base_url %q is not a valid URL", c.Server.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.base_url scheme %q must be http or https", u.Scheme)
	}
	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme %q must be dark, light or auto", c.UI.Theme)
	}
	if c.Session.LifetimeHours > 24*7 {
		return fmt.Errorf("session.lifetime_hours %d exceeds one week", c.Session.LifetimeHours)
	}
	return nil
}
