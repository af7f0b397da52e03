// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the admin session lifecycle: the durable session
// record, its fixed lifetime, and the expiry transitions.
//
// A record exists in the state store if and only if the caller is
// authenticated. Expiry is detected two ways - lazily whenever a guarded
// navigation is evaluated, and eagerly by a timer armed for the exact
// remaining duration. Both paths funnel into the same idempotent logout,
// so whichever fires first wins and the other becomes a no-op.
package session
