// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the Bubble Tea shell: it owns the current screen, runs
// every navigation through the route guard, arms the session expiry
// watch, and hosts the toast stack and the blocking expiry overlay.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/session"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/dashboard"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/help"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/login"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/manage"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/notfound"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/payslip"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/register"
)

// sender delivers messages into the running program from outside the
// update loop (the expiry timer fires on its own goroutine).
type sender interface {
	Send(msg tea.Msg)
}

// Model is the application shell.
type Model struct {
	deps ui.Deps

	route   string
	screen  ui.Screen
	toasts  components.ToastStack
	overlay components.ExpiryOverlay
	watch   *session.Watch
	program sender

	width  int
	height int
}

// New builds the shell. The first navigation targets the dashboard so
// an unauthenticated start lands on login via the guard.
func New(deps ui.Deps) *Model {
	m := &Model{
		deps:    deps,
		toasts:  components.NewToastStack(deps.Theme),
		overlay: components.NewExpiryOverlay(deps.Theme),
	}
	m.goTo(router.RouteDashboard)
	return m
}

// SetProgram wires the running program so the expiry timer can push
// messages into the update loop. Call before Program.Run.
func (m *Model) SetProgram(p sender) { m.program = p }

// Route returns the active route name.
func (m *Model) Route() string { return m.route }

// ===== NAVIGATION =====

// goTo runs one navigation through the guard and swaps the screen.
// Returns the new screen's init command.
func (m *Model) goTo(route string) tea.Cmd {
	ev := m.deps.Guard.Evaluate()
	if ev.Expired {
		// Lazy expiry detection. Block until acknowledged; the ack
		// handler finishes the redirect to login. A screen still gets
		// mounted underneath so the shell stays renderable when the
		// residual record is found on the very first navigation.
		m.cancelWatch()
		m.overlay.Show()
		m.route = router.RouteLogin
		return m.mount(router.RouteLogin)
	}

	d := router.Evaluate(ev.State, route)
	if d.ClearSession {
		m.cancelWatch()
		if err := m.deps.Guard.Logout(); err != nil {
			return components.ShowError("Sign-out failed: " + err.Error())
		}
	}
	target := d.Target

	m.route = target
	cmd := m.mount(target)

	// Keep the eager expiry timer armed exactly while a session exists.
	if ev.State == session.Authenticated && !d.ClearSession {
		m.armWatch()
	}
	return cmd
}

// mount constructs the screen for route and returns its Init command.
func (m *Model) mount(route string) tea.Cmd {
	switch route {
	case router.RouteLogin:
		m.screen = login.New(m.deps)
	case router.RouteDashboard:
		m.screen = dashboard.New(m.deps)
	case router.RouteRegister:
		scr, err := register.New(m.deps)
		if err != nil {
			m.route = router.RouteDashboard
			m.screen = dashboard.New(m.deps)
			return tea.Batch(m.screen.Init(),
				components.ShowError("Could not open the wizard: "+err.Error()))
		}
		m.screen = scr
	case router.RouteManage:
		m.screen = manage.New(m.deps)
	case router.RoutePayslip:
		m.screen = payslip.New(m.deps)
	case router.RouteHelp:
		m.screen = help.New(m.deps)
	default:
		m.screen = notfound.New(m.deps)
	}

	cmds := []tea.Cmd{m.screen.Init()}
	if m.width > 0 {
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// ===== SESSION WATCH =====

func (m *Model) armWatch() {
	m.cancelWatch()
	m.watch = m.deps.Guard.StartWatch(func() {
		if p := m.program; p != nil {
			p.Send(components.SessionExpiredMsg{})
		}
	})
}

func (m *Model) cancelWatch() {
	if m.watch != nil {
		m.watch.Cancel()
		m.watch = nil
	}
}

// ===== BUBBLE TEA =====

// Init starts the active screen.
func (m *Model) Init() tea.Cmd {
	return m.screen.Init()
}

// Update routes messages: overlay first (it blocks), then shell-level
// concerns, then the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toasts.SetWidth(msg.Width)
		m.overlay.SetSize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(msg)
		return m, cmd

	case components.SessionExpiredMsg:
		m.cancelWatch()
		m.overlay.Show()
		return m, nil

	case components.OverlayAckMsg:
		return m, m.goTo(router.RouteLogin)

	case components.NavigateMsg:
		return m, m.goTo(msg.Route)

	case components.ShowToastMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.overlay.Visible() {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c":
			m.cancelWatch()
			return m, tea.Quit
		case "ctrl+l":
			// Global sign-out, idempotent when already signed out.
			m.cancelWatch()
			if err := m.deps.Guard.Logout(); err != nil {
				return m, components.ShowError("Sign-out failed: " + err.Error())
			}
			return m, m.goTo(router.RouteLogin)
		}
	}

	// Toast expiry ticks flow through regardless of the active screen.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)

	m.screen, cmd = m.screen.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the screen, the toast stack, and the overlay on top.
func (m *Model) View() string {
	if m.overlay.Visible() {
		return m.overlay.View()
	}
	body := m.deps.Theme.App.Render(m.screen.View())
	if m.toasts.Active() > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.toasts.View())
	}
	return body
}
