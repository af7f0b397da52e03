// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	cfg.fillDefaults()
	require.NoError(t, cfg.Validate())

	require.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	require.Equal(t, 12*time.Hour, cfg.SessionLifetime())
	require.Equal(t, 30*time.Second, cfg.ServerTimeout())
	require.Equal(t, "auto", cfg.UI.Theme)
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, Default().Server.BaseURL, cfg.Server.BaseURL)
}

func TestLoadFromPathSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
base_url = "https://lms.webplusacademy.in"

[session]
lifetime_hours = 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "https://lms.webplusacademy.in", cfg.Server.BaseURL)
	require.Equal(t, 6*time.Hour, cfg.SessionLifetime())
	// Unset fields fall back to defaults.
	require.Equal(t, 30, cfg.Server.TimeoutSecs)
	require.Equal(t, "auto", cfg.UI.Theme)
}

func TestEnvOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[server]`+"\n"+`base_url = "http://file:8000"`), 0600))

	t.Setenv("LMS_ADMIN_SERVER_URL", "http://env:9000")
	t.Setenv("LMS_ADMIN_SESSION_HOURS", "3")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "http://env:9000", cfg.Server.BaseURL)
	require.Equal(t, 3, cfg.Session.LifetimeHours)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad url", func(c *Config) { c.Server.BaseURL = "not a url" }},
		{"bad scheme", func(c *Config) { c.Server.BaseURL = "ftp://host" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }},
		{"huge lifetime", func(c *Config) { c.Session.LifetimeHours = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.fillDefaults()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[server]`+"\n"+`base_url = "http://one:8000"`), 0600))

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[server]`+"\n"+`base_url = "http://two:8000"`), 0600))

	select {
	case cfg := <-reloaded:
		require.Equal(t, "http://two:8000", cfg.Server.BaseURL)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload in time")
	}
}
