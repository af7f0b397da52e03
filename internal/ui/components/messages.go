// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import tea "github.com/charmbracelet/bubbletea"

// =============================================================================
// SHARED MESSAGES
// =============================================================================

// NavigateMsg asks the shell to move to another route. The shell runs
// the navigation through the route guard before rendering anything.
type NavigateMsg struct {
	Route string
}

// Navigate returns a command that requests a route change.
func Navigate(route string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// SessionExpiredMsg tells the shell the session lifetime elapsed. The
// shell shows the blocking overlay and, once acknowledged, redirects to
// the login screen.
type SessionExpiredMsg struct{}

// OverlayAckMsg reports that the user dismissed the expiry overlay.
type OverlayAckMsg struct{}
