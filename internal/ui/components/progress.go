// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// =============================================================================
// WIZARD PROGRESS HEADER
// =============================================================================

// StepProgress is the wizard's header: step counter, title, and a
// progress bar filling as steps complete.
type StepProgress struct {
	theme *styles.Theme
	bar   progress.Model
	width int
}

// NewStepProgress builds the header with a gradient bar.
func NewStepProgress(theme *styles.Theme) StepProgress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return StepProgress{theme: theme, bar: bar}
}

// SetWidth sizes the bar to the available width.
func (p *StepProgress) SetWidth(width int) {
	p.width = width
	bw := width - 4
	if bw < 10 {
		bw = 10
	}
	if bw > 60 {
		bw = 60
	}
	p.bar.Width = bw
}

// View renders the header for step (1-based) of total with the given
// title.
func (p StepProgress) View(step, total int, title string) string {
	counter := lipgloss.NewStyle().Foreground(styles.TextSecondary).
		Render(fmt.Sprintf("Step %d of %d", step, total))
	heading := p.theme.StepTitle.Render(title)
	frac := 1.0
	if total > 1 {
		frac = float64(step-1) / float64(total-1)
	}
	bar := p.bar.ViewAs(frac)
	return lipgloss.JoinVertical(lipgloss.Left, counter, heading, bar)
}
