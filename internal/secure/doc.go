// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package secure seals the session record before it reaches the local
// state store. The backend token is a credential; leaving it in plaintext
// inside state.db would hand a session to anyone who can read the file.
//
// A random master secret is kept in a 0600 file next to the state
// database. The sealing key is derived from it with PBKDF2-SHA-256 and a
// per-install salt, and records are encrypted with AES-256-GCM. A record
// that fails to open for any reason is treated by callers as absent.
package secure
