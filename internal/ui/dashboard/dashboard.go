// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard is the protected landing screen: summary counts for
// the managed resources and shortcuts into the other screens.
package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

type summaryMsg struct {
	summary model.DashboardSummary
	err     error
}

// Model is the dashboard screen.
type Model struct {
	deps    ui.Deps
	summary model.DashboardSummary
	loaded  bool
	loading bool
	spin    spinner.Model
	width   int
}

// New builds the dashboard.
func New(deps ui.Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Indigo)
	return Model{deps: deps, spin: sp}
}

// Init kicks off the summary load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
		defer cancel()
		s, err := deps.API.Summary(ctx)
		return summaryMsg{summary: s, err: err}
	}
}

// Update handles the summary result and navigation shortcuts.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case summaryMsg:
		m.loading = false
		if msg.err != nil {
			return m, components.ShowError("Could not load summary: " + msg.err.Error())
		}
		m.summary = msg.summary
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, components.Navigate(router.RouteRegister)
		case "m":
			return m, components.Navigate(router.RouteManage)
		case "p":
			return m, components.Navigate(router.RoutePayslip)
		case "?":
			return m, components.Navigate(router.RouteHelp)
		case "r":
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.load())
		}
	}

	if m.loading || !m.loaded {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the count cards and the shortcut legend.
func (m Model) View() string {
	title := m.deps.Theme.HeaderTitle.Render("Dashboard")

	var body string
	if !m.loaded {
		body = m.spin.View() + " Loading summary..."
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.card("Students", m.summary.Students),
			m.card("Courses", m.summary.Courses),
			m.card("Internships", m.summary.Internships),
			m.card("Events", m.summary.Events),
			m.card("Workshops", m.summary.Workshops),
		)
	}

	legend := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(
		"s register student   m manage resources   p payslip   ? help   r refresh")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", legend)
}

func (m Model) card(label string, n int) string {
	num := lipgloss.NewStyle().Foreground(styles.Indigo).Bold(true).
		Render(fmt.Sprintf("%d", n))
	lbl := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(label)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 2).
		Margin(0, 1, 0, 0).
		Render(lipgloss.JoinVertical(lipgloss.Center, num, lbl))
}
