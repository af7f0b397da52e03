// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli handles the non-TUI entry points: version, headless
// login/logout, and config inspection. Anything it does not recognize
// falls through to the interactive console.
package cli
