// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router decides which screen a navigation may reach given the
// current session state. Evaluate is pure - it returns a decision and
// leaves every side effect (clearing the session, swapping the screen)
// to the UI shell that acts on it.
package router
