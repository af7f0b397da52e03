// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Web-Plus-Academy/lms-admin/internal/api"
	"github.com/Web-Plus-Academy/lms-admin/internal/config"
	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/session"
	"github.com/Web-Plus-Academy/lms-admin/internal/store"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// passCodec stores session records unsealed.
type passCodec struct{}

func (passCodec) Seal(plaintext string) (string, error) { return plaintext, nil }
func (passCodec) Open(value string) (string, error)     { return value, nil }

func testDeps(kv store.KV) ui.Deps {
	return ui.Deps{
		Theme:  styles.NewTheme("dark"),
		API:    api.NewClient(api.Options{BaseURL: "http://127.0.0.1:0"}),
		Guard:  session.NewGuard(kv, passCodec{}, 12*time.Hour),
		Store:  kv,
		Config: config.Default(),
	}
}

func TestStartsOnLoginWhenUnauthenticated(t *testing.T) {
	m := New(testDeps(store.NewMemStore()))
	require.Equal(t, router.RouteLogin, m.Route())
}

func TestStartsOnDashboardWithSession(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))

	m := New(deps)
	require.Equal(t, router.RouteDashboard, m.Route())
}

func TestLoginBouncedWhenAuthenticated(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))
	m := New(deps)

	_, _ = m.Update(components.NavigateMsg{Route: router.RouteLogin})
	require.Equal(t, router.RouteDashboard, m.Route())
}

func TestUnknownRouteClearsSession(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))
	m := New(deps)

	_, _ = m.Update(components.NavigateMsg{Route: "no-such-screen"})
	require.Equal(t, router.RouteNotFound, m.Route())
	_, ok := deps.Guard.Current()
	require.False(t, ok, "session must be destroyed")
}

func TestLazyExpiryShowsOverlayThenLogin(t *testing.T) {
	kv := store.NewMemStore()
	deps := testDeps(kv)
	require.NoError(t, deps.Guard.Establish("admin", "tok"))

	m := New(deps)
	require.Equal(t, router.RouteDashboard, m.Route())

	// Move the clock past the lifetime, then navigate.
	deps.Guard.SetNowFunc(func() time.Time { return time.Now().Add(13 * time.Hour) })
	_, _ = m.Update(components.NavigateMsg{Route: router.RouteManage})
	require.Contains(t, m.View(), "Session Expired")

	// Keys other than the acknowledgement are swallowed.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	require.Contains(t, m.View(), "Session Expired")

	// Enter acknowledges; the resulting command asks for the redirect.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	require.Equal(t, router.RouteLogin, m.Route())
	_, ok := deps.Guard.Current()
	require.False(t, ok)
}

func TestStartupWithResidualExpiredSession(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))

	// The record outlives the process; the next start finds it expired
	// before any screen exists.
	deps.Guard.SetNowFunc(func() time.Time { return time.Now().Add(13 * time.Hour) })

	var m *Model
	require.NotPanics(t, func() {
		m = New(deps)
		_ = m.Init()
		_ = m.View()
	})
	require.Contains(t, m.View(), "Session Expired")
	_, ok := deps.Guard.Current()
	require.False(t, ok, "residual record must be destroyed")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, _ = m.Update(cmd())
	require.Equal(t, router.RouteLogin, m.Route())
}

func TestEagerExpiryMessageShowsOverlay(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))
	m := New(deps)

	_, _ = m.Update(components.SessionExpiredMsg{})
	require.Contains(t, m.View(), "Session Expired")
}

func TestGlobalLogout(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))
	m := New(deps)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Equal(t, router.RouteLogin, m.Route())
	_, ok := deps.Guard.Current()
	require.False(t, ok)

	// Logging out again is a no-op.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Equal(t, router.RouteLogin, m.Route())
}

func TestProtectedRoutesReachableWhenAuthenticated(t *testing.T) {
	deps := testDeps(store.NewMemStore())
	require.NoError(t, deps.Guard.Establish("admin", "tok"))
	m := New(deps)

	for _, route := range []string{
		router.RouteRegister, router.RouteManage,
		router.RoutePayslip, router.RouteHelp, router.RouteDashboard,
	} {
		_, _ = m.Update(components.NavigateMsg{Route: route})
		require.Equal(t, route, m.Route())
	}
}

func TestProtectedRouteRedirectsToLogin(t *testing.T) {
	m := New(testDeps(store.NewMemStore()))
	_, _ = m.Update(components.NavigateMsg{Route: router.RouteManage})
	require.Equal(t, router.RouteLogin, m.Route())
}
