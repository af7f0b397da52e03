// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the lms-admin console:
// atomic file writes for state that must survive a crash, and string
// helpers for terminal rendering.
package util
