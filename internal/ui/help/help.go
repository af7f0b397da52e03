// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package help renders the embedded handbook with glamour inside a
// scrollable viewport.
package help

import (
	_ "embed"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

//go:embed handbook.md
var handbook string

// Model is the handbook screen.
type Model struct {
	deps     ui.Deps
	view     viewport.Model
	rendered bool
}

// New builds the screen; rendering waits for the first window size.
func New(deps ui.Deps) Model {
	return Model{deps: deps, view: viewport.New(80, 20)}
}

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// render lays the handbook out for the given width.
func (m *Model) render(width int) {
	style := "light"
	if m.deps.Theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		m.view.SetContent(handbook)
		m.rendered = true
		return
	}
	out, err := r.Render(handbook)
	if err != nil {
		out = handbook
	}
	m.view.SetContent(out)
	m.rendered = true
}

// Update scrolls the viewport and handles the back key.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 4
		m.render(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, components.Navigate(router.RouteDashboard)
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View renders the handbook viewport with a footer hint.
func (m Model) View() string {
	if !m.rendered {
		m.render(m.view.Width)
	}
	hint := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render("j/k or arrows to scroll, Esc to go back")
	return lipgloss.JoinVertical(lipgloss.Left, m.view.View(), hint)
}
