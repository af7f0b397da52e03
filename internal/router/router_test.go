// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Web-Plus-Academy/lms-admin/internal/session"
)

func TestProtectedRequiresAuthentication(t *testing.T) {
	for _, name := range []string{RouteDashboard, RouteRegister, RouteManage, RoutePayslip, RouteHelp} {
		d := Evaluate(session.Unauthenticated, name)
		require.Equal(t, ActionRedirect, d.Action, name)
		require.Equal(t, RouteLogin, d.Target, name)
		require.False(t, d.ClearSession, name)

		d = Evaluate(session.Authenticated, name)
		require.Equal(t, ActionRender, d.Action, name)
		require.Equal(t, name, d.Target)
	}
}

func TestExpiredStateIsNotAuthenticated(t *testing.T) {
	d := Evaluate(session.Expired, RouteDashboard)
	require.Equal(t, ActionRedirect, d.Action)
	require.Equal(t, RouteLogin, d.Target)
}

func TestPublicOnlyBouncesAuthenticated(t *testing.T) {
	d := Evaluate(session.Authenticated, RouteLogin)
	require.Equal(t, ActionRedirect, d.Action)
	require.Equal(t, RouteDashboard, d.Target)

	d = Evaluate(session.Unauthenticated, RouteLogin)
	require.Equal(t, ActionRender, d.Action)
	require.Equal(t, RouteLogin, d.Target)
}

func TestUnknownRouteForcesLogout(t *testing.T) {
	for _, state := range []session.State{session.Unauthenticated, session.Authenticated, session.Expired} {
		d := Evaluate(state, "no-such-screen")
		require.Equal(t, ActionRedirect, d.Action)
		require.Equal(t, RouteNotFound, d.Target)
		require.True(t, d.ClearSession)
	}
}

func TestNotFoundRendersAndClears(t *testing.T) {
	d := Evaluate(session.Authenticated, RouteNotFound)
	require.Equal(t, ActionRender, d.Action)
	require.Equal(t, RouteNotFound, d.Target)
	require.True(t, d.ClearSession)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup(RoutePayslip)
	require.True(t, ok)
	require.Equal(t, ClassProtected, r.Class)

	_, ok = Lookup("bogus")
	require.False(t, ok)

	require.Len(t, Routes(), 7)
}

func TestClassString(t *testing.T) {
	require.Equal(t, "protected", ClassProtected.String())
	require.Equal(t, "public-only", ClassPublicOnly.String())
	require.Equal(t, "neutral", ClassNeutral.String())
	require.Equal(t, "unknown", Class(99).String())
}
