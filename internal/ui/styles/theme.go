// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components shared across screens. It detects
// the terminal's color capability once at startup; the config theme
// setting ("light"/"dark") can override background detection.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// CHROME
	// ==========================================================================

	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	StatusBar   lipgloss.Style
	ShortcutKey lipgloss.Style

	// ==========================================================================
	// FORMS
	// ==========================================================================

	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	FieldError   lipgloss.Style
	StepTitle    lipgloss.Style
	ReviewKey    lipgloss.Style
	ReviewValue  lipgloss.Style

	// ==========================================================================
	// TABLES AND LISTS
	// ==========================================================================

	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowSel lipgloss.Style

	// ==========================================================================
	// NOTICES
	// ==========================================================================

	ToastStatus  lipgloss.Style
	ToastError   lipgloss.Style
	ToastSuccess lipgloss.Style
	OverlayBox   lipgloss.Style
}

// NewTheme builds the theme for the current terminal. themePref is the
// configured theme name: "auto", "light", or "dark".
func NewTheme(themePref string) *Theme {
	profile := termenv.ColorProfile()
	isDark := termenv.HasDarkBackground()
	switch themePref {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}

	t.App = lipgloss.NewStyle().Padding(0, 1)
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().Foreground(Indigo).Bold(true)
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	t.Label = lipgloss.NewStyle().Foreground(TextSecondary)
	t.LabelFocused = lipgloss.NewStyle().Foreground(Indigo).Bold(true)
	t.FieldError = lipgloss.NewStyle().Foreground(Rose)
	t.StepTitle = lipgloss.NewStyle().Foreground(Indigo).Bold(true).Underline(true)
	t.ReviewKey = lipgloss.NewStyle().Foreground(TextSecondary).Width(18)
	t.ReviewValue = lipgloss.NewStyle().Foreground(TextPrimary)

	t.TableHeader = lipgloss.NewStyle().Foreground(Indigo).Bold(true)
	t.TableRow = lipgloss.NewStyle().Foreground(TextPrimary)
	t.TableRowSel = lipgloss.NewStyle().Foreground(TextPrimary).Background(SelectionBg).Bold(true)

	t.ToastStatus = toastStyle(Cyan)
	t.ToastError = toastStyle(Rose)
	t.ToastSuccess = toastStyle(Emerald)
	t.OverlayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Amber).
		Padding(1, 3).
		Align(lipgloss.Center)

	return t
}

func toastStyle(border lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(TextPrimary).
		Padding(0, 1)
}
