// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui defines the contract between the application shell and the
// individual screens. Each screen is a Bubble Tea model over the shared
// dependency bundle; the shell owns navigation and the route guard.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Web-Plus-Academy/lms-admin/internal/api"
	"github.com/Web-Plus-Academy/lms-admin/internal/config"
	"github.com/Web-Plus-Academy/lms-admin/internal/session"
	"github.com/Web-Plus-Academy/lms-admin/internal/store"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// Screen is one routable page. Update returns the replacement screen so
// implementations can stay value types.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
}

// Deps is the dependency bundle handed to every screen constructor.
type Deps struct {
	Theme  *styles.Theme
	API    *api.Client
	Guard  *session.Guard
	Store  store.KV
	Config *config.Config
}
