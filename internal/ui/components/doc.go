// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds the UI widgets shared across screens: the
// toast stack, the blocking session-expiry overlay, labeled inputs, and
// the wizard progress header. Components are plain Bubble Tea models the
// screens embed.
package components
