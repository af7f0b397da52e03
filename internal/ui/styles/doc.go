// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles is the visual styling system for the admin console.
// Colors are lipgloss AdaptiveColor pairs so light and dark terminals
// both get readable output; the theme setting can pin one variant.
package styles
