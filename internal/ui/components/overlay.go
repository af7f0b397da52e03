// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// =============================================================================
// SESSION EXPIRY OVERLAY
// =============================================================================

// ExpiryOverlay is the blocking acknowledgement shown when the session
// lifetime elapses. While visible it swallows every key except the
// acknowledgement, so the redirect to login cannot be skipped.
type ExpiryOverlay struct {
	theme   *styles.Theme
	visible bool
	width   int
	height  int
}

// NewExpiryOverlay returns a hidden overlay.
func NewExpiryOverlay(theme *styles.Theme) ExpiryOverlay {
	return ExpiryOverlay{theme: theme}
}

// Show makes the overlay visible.
func (o *ExpiryOverlay) Show() { o.visible = true }

// Visible reports whether the overlay is blocking input.
func (o ExpiryOverlay) Visible() bool { return o.visible }

// SetSize records the window dimensions for centering.
func (o *ExpiryOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Update consumes input while visible. Enter (or space) acknowledges;
// everything else is swallowed.
func (o ExpiryOverlay) Update(msg tea.Msg) (ExpiryOverlay, tea.Cmd) {
	if !o.visible {
		return o, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			o.visible = false
			return o, func() tea.Msg { return OverlayAckMsg{} }
		}
	}
	return o, nil
}

// View renders the centered acknowledgement box.
func (o ExpiryOverlay) View() string {
	if !o.visible {
		return ""
	}
	width, height := o.width, o.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	boxWidth := width - 8
	if boxWidth > 54 {
		boxWidth = 54
	}
	if boxWidth < 36 {
		boxWidth = 36
	}

	title := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true).
		Render(styles.StatusIndicators.Warning + " Session Expired")
	body := lipgloss.NewStyle().Foreground(styles.TextPrimary).
		Width(boxWidth - 8).Align(lipgloss.Center).
		Render("Your session has ended. Please sign in again to continue.")
	hint := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).
		Render("Press Enter to return to the login screen")

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", hint)
	box := o.theme.OverlayBox.Width(boxWidth).Render(content)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		box,
		lipgloss.WithWhitespaceBackground(styles.SurfaceDim),
	)
}
