// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// =============================================================================
// TOASTS
// =============================================================================

// ToastKind selects the toast's color and default duration.
type ToastKind int

const (
	// ToastStatus is an informational notice.
	ToastStatus ToastKind = iota
	// ToastError reports a failure; shown longer so it can be read.
	ToastError
	// ToastSuccess confirms a completed action.
	ToastSuccess
)

// Auto-dismiss durations per kind.
const (
	StatusToastDuration  = 4 * time.Second
	ErrorToastDuration   = 8 * time.Second
	SuccessToastDuration = 4 * time.Second
)

var toastSeq atomic.Int64

// Toast is one non-blocking notice. Validation and transport errors
// surface here; they never block the screen.
type Toast struct {
	ID        int64
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

func newToast(message string, kind ToastKind, d time.Duration) Toast {
	return Toast{
		ID:        toastSeq.Add(1),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ShowToastMsg appends a toast to the stack.
type ShowToastMsg struct{ Toast Toast }

// toastExpireMsg dismisses a toast by id.
type toastExpireMsg struct{ id int64 }

// ShowStatus returns a command that raises an informational toast.
func ShowStatus(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Toast: newToast(message, ToastStatus, StatusToastDuration)} }
}

// ShowError returns a command that raises an error toast.
func ShowError(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Toast: newToast(message, ToastError, ErrorToastDuration)} }
}

// ShowSuccess returns a command that raises a success toast.
func ShowSuccess(message string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Toast: newToast(message, ToastSuccess, SuccessToastDuration)} }
}

// =============================================================================
// TOAST STACK
// =============================================================================

// ToastStack renders active toasts bottom-right, newest last. Capacity
// is bounded; the oldest toast drops when a new one would overflow.
type ToastStack struct {
	theme  *styles.Theme
	toasts []Toast
	max    int
	width  int
}

// NewToastStack returns a stack holding at most five toasts.
func NewToastStack(theme *styles.Theme) ToastStack {
	return ToastStack{theme: theme, max: 5}
}

// SetWidth sets the available render width.
func (s *ToastStack) SetWidth(width int) { s.width = width }

// Active reports the number of live toasts.
func (s ToastStack) Active() int { return len(s.toasts) }

// Update handles toast lifecycle messages.
func (s ToastStack) Update(msg tea.Msg) (ToastStack, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		s.toasts = append(s.toasts, msg.Toast)
		if len(s.toasts) > s.max {
			s.toasts = s.toasts[len(s.toasts)-s.max:]
		}
		id := msg.Toast.ID
		return s, tea.Tick(msg.Toast.Duration, func(time.Time) tea.Msg {
			return toastExpireMsg{id: id}
		})

	case toastExpireMsg:
		kept := s.toasts[:0]
		for _, t := range s.toasts {
			if t.ID != msg.id {
				kept = append(kept, t)
			}
		}
		s.toasts = kept
	}
	return s, nil
}

// View renders the stack, one boxed line per toast.
func (s ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		var style lipgloss.Style
		var prefix string
		switch t.Kind {
		case ToastError:
			style = s.theme.ToastError
			prefix = styles.StatusIndicators.Error
		case ToastSuccess:
			style = s.theme.ToastSuccess
			prefix = styles.StatusIndicators.Success
		default:
			style = s.theme.ToastStatus
			prefix = styles.StatusIndicators.Info
		}
		lines = append(lines, style.Render(prefix+" "+t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}
