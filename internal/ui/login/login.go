// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login is the public sign-in screen: two credential inputs, a
// rotating tagline, and a loading state while the backend checks the
// credentials.
package login

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/api"
	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// slides rotate under the login box, one every few seconds.
var slides = []string{
	"Manage courses, internships, events and workshops in one place.",
	"Register students through the guided five-step wizard.",
	"Drafts are saved locally - pick up right where you left off.",
	"Sessions are valid for 12 hours, then you sign in again.",
}

const slideInterval = 4 * time.Second

type slideTickMsg struct{}

type loginResultMsg struct {
	userID string
	err    error
}

// Model is the login screen.
type Model struct {
	deps ui.Deps

	userID   components.LabeledInput
	password components.LabeledInput
	focus    int
	loading  bool
	spin     spinner.Model
	slide    int
	width    int
}

// New builds the login screen.
func New(deps ui.Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Indigo)

	m := Model{
		deps:     deps,
		userID:   components.NewLabeledInput(deps.Theme, "User ID", "admin"),
		password: components.NewPasswordInput(deps.Theme, "Password"),
		spin:     sp,
	}
	m.userID.Focus()
	return m
}

// Init starts the tagline rotation.
func (m Model) Init() tea.Cmd {
	return tea.Tick(slideInterval, func(time.Time) tea.Msg { return slideTickMsg{} })
}

// Update handles input, submission, and the tagline ticker.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case slideTickMsg:
		m.slide = (m.slide + 1) % len(slides)
		return m, tea.Tick(slideInterval, func(time.Time) tea.Msg { return slideTickMsg{} })

	case loginResultMsg:
		m.loading = false
		if msg.err != nil {
			return m, components.ShowError("Sign-in failed: " + msg.err.Error())
		}
		return m, tea.Batch(
			components.ShowSuccess("Welcome back, "+msg.userID),
			components.Navigate(router.RouteDashboard),
		)

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.toggleFocus()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.toggleFocus()
				return m, nil
			}
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.userID, cmd = m.userID.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	if m.loading {
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	m.focus = 1 - m.focus
	if m.focus == 0 {
		m.userID.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.userID.Blur()
	}
}

func (m Model) submit() (ui.Screen, tea.Cmd) {
	userID := m.userID.Value()
	password := m.password.Value()
	if userID == "" || password == "" {
		return m, components.ShowError("Enter both user ID and password")
	}

	m.loading = true
	deps := m.deps
	login := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
		defer cancel()

		res, err := deps.API.Login(ctx, api.Credentials{UserID: userID, Password: password})
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := deps.Guard.Establish(userID, res.Token); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{userID: userID}
	}
	return m, tea.Batch(m.spin.Tick, login)
}

// View renders the centered login box with the rotating tagline.
func (m Model) View() string {
	title := m.deps.Theme.HeaderTitle.Render("Web Plus Academy - Admin Console")

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.userID.View(),
		"",
		m.password.View(),
	)

	var status string
	if m.loading {
		status = m.spin.View() + " Signing in..."
	} else {
		status = lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("Enter to sign in, Tab to switch fields")
	}

	tagline := lipgloss.NewStyle().Foreground(styles.TextSecondary).Italic(true).
		Render(slides[m.slide])

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Indigo).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", form, "", status))

	return lipgloss.JoinVertical(lipgloss.Center, box, "", tagline)
}
