// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// =============================================================================
// LABELED INPUT
// =============================================================================

// LabeledInput pairs a bubbles text input with a label and an optional
// read-only mode for derived fields.
type LabeledInput struct {
	Label    string
	Input    textinput.Model
	ReadOnly bool

	theme *styles.Theme
}

// NewLabeledInput builds an input with the given label and placeholder.
func NewLabeledInput(theme *styles.Theme, label, placeholder string) LabeledInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Prompt = "> "
	return LabeledInput{Label: label, Input: in, theme: theme}
}

// NewPasswordInput builds a masked input.
func NewPasswordInput(theme *styles.Theme, label string) LabeledInput {
	li := NewLabeledInput(theme, label, "")
	li.Input.EchoMode = textinput.EchoPassword
	li.Input.EchoCharacter = '*'
	return li
}

// Focus gives the input keyboard focus.
func (l *LabeledInput) Focus() tea.Cmd {
	if l.ReadOnly {
		return nil
	}
	return l.Input.Focus()
}

// Blur removes keyboard focus.
func (l *LabeledInput) Blur() { l.Input.Blur() }

// Focused reports keyboard focus.
func (l LabeledInput) Focused() bool { return l.Input.Focused() }

// Value returns the current text.
func (l LabeledInput) Value() string { return l.Input.Value() }

// SetValue replaces the current text.
func (l *LabeledInput) SetValue(v string) { l.Input.SetValue(v) }

// Update forwards messages to the underlying text input.
func (l LabeledInput) Update(msg tea.Msg) (LabeledInput, tea.Cmd) {
	if l.ReadOnly {
		return l, nil
	}
	var cmd tea.Cmd
	l.Input, cmd = l.Input.Update(msg)
	return l, cmd
}

// View renders the label above the input line.
func (l LabeledInput) View() string {
	labelStyle := l.theme.Label
	if l.Focused() {
		labelStyle = l.theme.LabelFocused
	}
	label := labelStyle.Render(l.Label)
	if l.ReadOnly {
		value := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(l.Input.Value() + "  (derived)")
		return lipgloss.JoinVertical(lipgloss.Left, label, value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, l.Input.View())
}
