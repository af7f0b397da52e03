// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"config", "show", "--user", "admin", "--json", "--theme=dark"})
	require.Equal(t, "config", p.Subcommand())
	require.Equal(t, []string{"show"}, p.Positional())
	require.Equal(t, "admin", p.Flag("user"))
	require.Equal(t, "dark", p.Flag("theme"))
	require.True(t, p.BoolFlag("json"))
	require.False(t, p.BoolFlag("missing"))
	require.Empty(t, p.Flag("missing"))
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--json=false", "--force=true"})
	require.False(t, p.BoolFlag("json"))
	require.True(t, p.BoolFlag("force"))
	require.Empty(t, p.Subcommand())
	require.Nil(t, p.Positional())
}

func TestArgParserTrailingFlag(t *testing.T) {
	p := NewArgParser([]string{"login", "--user"})
	require.Equal(t, "login", p.Subcommand())
	require.True(t, p.BoolFlag("user"))
}
