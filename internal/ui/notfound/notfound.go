// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notfound is the terminal catch-all screen. The shell clears
// any residual session record before showing it; the only way out is
// back to the login screen.
package notfound

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// Model is the 404 screen.
type Model struct {
	deps   ui.Deps
	width  int
	height int
}

// New builds the screen.
func New(deps ui.Deps) Model {
	return Model{deps: deps}
}

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// Update waits for Enter and redirects to login.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m, components.Navigate(router.RouteLogin)
		}
	}
	return m, nil
}

// View renders the centered 404 box.
func (m Model) View() string {
	width, height := m.width, m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	code := lipgloss.NewStyle().Foreground(styles.Rose).Bold(true).Render("404")
	msg := lipgloss.NewStyle().Foreground(styles.TextPrimary).
		Render("That screen does not exist. You have been signed out.")
	hint := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).
		Render("Press Enter to go to the login screen")

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Rose).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, code, "", msg, "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
