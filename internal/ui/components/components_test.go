// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

func testTheme() *styles.Theme { return styles.NewTheme("dark") }

func TestToastStackAppendAndExpire(t *testing.T) {
	s := NewToastStack(testTheme())

	msg := ShowError("backend down")().(ShowToastMsg)
	s, cmd := s.Update(msg)
	require.NotNil(t, cmd, "expiry tick must be scheduled")
	require.Equal(t, 1, s.Active())
	require.Contains(t, s.View(), "backend down")

	s, _ = s.Update(toastExpireMsg{id: msg.Toast.ID})
	require.Zero(t, s.Active())
	require.Empty(t, s.View())
}

func TestToastStackBounded(t *testing.T) {
	s := NewToastStack(testTheme())
	for i := 0; i < 8; i++ {
		s, _ = s.Update(ShowStatus("n")().(ShowToastMsg))
	}
	require.Equal(t, 5, s.Active())
}

func TestToastKinds(t *testing.T) {
	require.Equal(t, ToastStatus, ShowStatus("x")().(ShowToastMsg).Toast.Kind)
	require.Equal(t, ToastError, ShowError("x")().(ShowToastMsg).Toast.Kind)
	require.Equal(t, ToastSuccess, ShowSuccess("x")().(ShowToastMsg).Toast.Kind)
}

func TestOverlayBlocksUntilAck(t *testing.T) {
	o := NewExpiryOverlay(testTheme())
	require.False(t, o.Visible())
	require.Empty(t, o.View())

	o.Show()
	require.True(t, o.Visible())
	require.Contains(t, o.View(), "Session Expired")

	// Random keys are swallowed.
	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.Nil(t, cmd)
	require.True(t, o.Visible())

	// Enter acknowledges and emits the ack message.
	o, cmd = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.False(t, o.Visible())
	require.IsType(t, OverlayAckMsg{}, cmd())
}

func TestLabeledInput(t *testing.T) {
	in := NewLabeledInput(testTheme(), "Email", "you@example.com")
	in.SetValue("a@b.io")
	require.Equal(t, "a@b.io", in.Value())
	require.Contains(t, in.View(), "Email")

	ro := NewLabeledInput(testTheme(), "User ID", "")
	ro.ReadOnly = true
	ro.SetValue("FSB104")
	require.Nil(t, ro.Focus())
	require.Contains(t, ro.View(), "derived")
}
