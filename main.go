// lms-admin - terminal admin console for the Web Plus Academy platform.
//
// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Web-Plus-Academy/lms-admin/internal/api"
	"github.com/Web-Plus-Academy/lms-admin/internal/app"
	"github.com/Web-Plus-Academy/lms-admin/internal/cli"
	"github.com/Web-Plus-Academy/lms-admin/internal/config"
	"github.com/Web-Plus-Academy/lms-admin/internal/secure"
	"github.com/Web-Plus-Academy/lms-admin/internal/session"
	"github.com/Web-Plus-Academy/lms-admin/internal/store"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// Version information (set at build time)
var Version = "0.1.0"

func init() {
	cli.Version = Version
}

func main() {
	cfg := loadConfig()

	dataDir, err := cfg.DataDir()
	if err != nil {
		fatal("resolve data directory", err)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		fatal("create data directory", err)
	}

	// Local state store. A broken database degrades to memory so the
	// console still opens; drafts just will not survive the process.
	var kv store.KV
	sqlStore, err := store.OpenSQLite(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: local state unavailable (%v); drafts will not persist\n", err)
		kv = store.NewMemStore()
	} else {
		kv = sqlStore
		defer sqlStore.Close()
	}

	// Session records are sealed at rest with a machine-local key.
	sealer, err := secure.NewSealer(secure.NewFileKeyStore(dataDir))
	if err != nil {
		fatal("init sealer", err)
	}

	guard := session.NewGuard(kv, sealer, cfg.SessionLifetime())
	client := api.NewClient(api.Options{
		BaseURL:        cfg.Server.BaseURL,
		Timeout:        cfg.ServerTimeout(),
		RequestsPerSec: cfg.Server.RequestsPerSec,
	})
	if rec, ok := guard.Current(); ok {
		client.SetToken(rec.Token)
	}

	// Headless subcommands exit before the console opens.
	if handled, ok := cli.Run(os.Args[1:], cli.Deps{Config: cfg, API: client, Guard: guard}); ok {
		os.Exit(handled.Code)
	}

	deps := ui.Deps{
		Theme:  styles.NewTheme(cfg.UI.Theme),
		API:    client,
		Guard:  guard,
		Store:  kv,
		Config: cfg,
	}

	shell := app.New(deps)
	program := tea.NewProgram(shell, tea.WithAltScreen())
	shell.SetProgram(program)

	watcher := watchConfig(program)
	if watcher != nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fatal("run console", err)
	}
}

// loadConfig reads the config file, tolerating its absence.
func loadConfig() *config.Config {
	path, err := config.Path()
	if err != nil {
		fatal("locate config", err)
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		fatal("load config", err)
	}
	return cfg
}

// watchConfig reloads the file on change and tells the user. Structural
// settings (server URL, data dir) still need a restart.
func watchConfig(program *tea.Program) *config.Watcher {
	path, err := config.Path()
	if err != nil {
		return nil
	}
	w, err := config.NewWatcher(path, func(*config.Config) {
		notice := components.ShowStatus("Configuration changed on disk - restart to apply server settings")
		program.Send(notice())
	})
	if err != nil {
		return nil
	}
	return w
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "lms-admin: %s: %v\n", what, err)
	os.Exit(1)
}
