// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// kvContract exercises the behavior every KV implementation must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()

	// Absent key.
	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	// Write then read back.
	require.NoError(t, kv.Set("draft:addStudent", `{"step":1}`))
	v, ok, err := kv.Get("draft:addStudent")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"step":1}`, v)

	// Overwrite.
	require.NoError(t, kv.Set("draft:addStudent", `{"step":2}`))
	v, _, _ = kv.Get("draft:addStudent")
	require.Equal(t, `{"step":2}`, v)

	// Remove is idempotent.
	require.NoError(t, kv.Remove("draft:addStudent"))
	_, ok, err = kv.Get("draft:addStudent")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, kv.Remove("draft:addStudent"))
}

func TestMemStoreContract(t *testing.T) {
	kvContract(t, NewMemStore())
}

func TestSQLiteStoreContract(t *testing.T) {
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	kvContract(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("session", "sealed-bytes"))
	require.NoError(t, s.Close())

	// Simulated process restart: a fresh handle sees the same state.
	s2, err := OpenSQLite(dir)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get("session")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "sealed-bytes", v)
}

func TestSQLiteStoreClosed(t *testing.T) {
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, _, err = s.Get("any")
	require.ErrorIs(t, err, ErrStoreClosed)
	require.ErrorIs(t, s.Set("any", "v"), ErrStoreClosed)
	require.ErrorIs(t, s.Remove("any"), ErrStoreClosed)
}

func TestDraftKey(t *testing.T) {
	if got := DraftKey("addStudent"); got != "draft:addStudent" {
		t.Errorf("DraftKey = %q", got)
	}
}
