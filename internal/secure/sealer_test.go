// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package secure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	sealer, err := NewSealer(NewFileKeyStore(t.TempDir()))
	require.NoError(t, err)

	sealed, err := sealer.Seal(`{"subjectId":"A1","issuedAt":1700000000000}`)
	require.NoError(t, err)
	require.Contains(t, sealed, "SEALED:")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, `{"subjectId":"A1","issuedAt":1700000000000}`, opened)
}

func TestSealIsNonDeterministic(t *testing.T) {
	sealer, err := NewSealer(NewFileKeyStore(t.TempDir()))
	require.NoError(t, err)

	a, err := sealer.Seal("same input")
	require.NoError(t, err)
	b, err := sealer.Seal("same input")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "random nonce must vary the ciphertext")
}

func TestOpenRejectsGarbage(t *testing.T) {
	sealer, err := NewSealer(NewFileKeyStore(t.TempDir()))
	require.NoError(t, err)

	_, err = sealer.Open("plaintext junk")
	require.ErrorIs(t, err, ErrNotSealed)

	_, err = sealer.Open("SEALED:not-base64!!!")
	require.ErrorIs(t, err, ErrOpenFailed)

	_, err = sealer.Open("SEALED:AAAA")
	require.ErrorIs(t, err, ErrOpenFailed)
}

func TestOpenFailsAfterKeyReset(t *testing.T) {
	dir := t.TempDir()
	ks := NewFileKeyStore(dir)

	sealer, err := NewSealer(ks)
	require.NoError(t, err)
	sealed, err := sealer.Seal("record")
	require.NoError(t, err)

	// New key material cannot open records sealed under the old key.
	require.NoError(t, ks.Reset())
	sealer2, err := NewSealer(ks)
	require.NoError(t, err)
	_, err = sealer2.Open(sealed)
	require.ErrorIs(t, err, ErrOpenFailed)
}

func TestKeyMaterialIsStable(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewSealer(NewFileKeyStore(dir))
	require.NoError(t, err)
	sealed, err := s1.Seal("record")
	require.NoError(t, err)

	// A second sealer over the same data dir opens the first one's output.
	s2, err := NewSealer(NewFileKeyStore(dir))
	require.NoError(t, err)
	opened, err := s2.Open(sealed)
	require.NoError(t, err)
	require.Equal(t, "record", opened)
}
