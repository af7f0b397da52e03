// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package payslip is the pay-statement calculator. Everything is
// computed locally: earning components summed to a gross, rendered with
// Indian digit grouping and the amount spelled out in words.
package payslip

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
)

// field indexes in tab order.
const (
	fieldName = iota
	fieldID
	fieldDesignation
	fieldPeriod
	fieldBasic
	fieldHRA
	fieldTravel
	fieldInternet
	fieldProfessional
	fieldCount
)

// Model is the payslip calculator screen.
type Model struct {
	deps   ui.Deps
	inputs [fieldCount]components.LabeledInput
	focus  int
	width  int
}

// New builds the calculator with empty fields.
func New(deps ui.Deps) Model {
	m := Model{deps: deps}
	mk := func(label, placeholder string) components.LabeledInput {
		return components.NewLabeledInput(deps.Theme, label, placeholder)
	}
	m.inputs[fieldName] = mk("Employee name", "")
	m.inputs[fieldID] = mk("Employee ID", "WPA-0042")
	m.inputs[fieldDesignation] = mk("Designation", "")
	m.inputs[fieldPeriod] = mk("Pay period", "August 2026")
	m.inputs[fieldBasic] = mk("Basic", "amount in rupees")
	m.inputs[fieldHRA] = mk("HRA", "0")
	m.inputs[fieldTravel] = mk("Travel allowance", "0")
	m.inputs[fieldInternet] = mk("Internet allowance", "0")
	m.inputs[fieldProfessional] = mk("Professional allowance", "0")
	m.inputs[fieldName].Focus()
	return m
}

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// Update moves focus and forwards edits; the statement recomputes on
// every render.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, components.Navigate(router.RouteDashboard)
		case "tab", "down", "enter":
			m.focusField((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m Model) amount(i int) int {
	n, err := strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// slip assembles the statement from the current inputs. Unparseable
// amounts count as zero rather than blocking the preview.
func (m Model) slip() model.Payslip {
	return model.Payslip{
		EmployeeName: m.inputs[fieldName].Value(),
		EmployeeID:   m.inputs[fieldID].Value(),
		Designation:  m.inputs[fieldDesignation].Value(),
		PayPeriod:    m.inputs[fieldPeriod].Value(),
		Basic:        m.amount(fieldBasic),
		HRA:          m.amount(fieldHRA),
		Travel:       m.amount(fieldTravel),
		Internet:     m.amount(fieldInternet),
		Professional: m.amount(fieldProfessional),
	}
}

// View renders the form next to the live statement preview.
func (m Model) View() string {
	title := m.deps.Theme.HeaderTitle.Render("Payslip")

	formParts := make([]string, 0, fieldCount*2)
	for i := range m.inputs {
		formParts = append(formParts, m.inputs[i].View(), "")
	}
	form := lipgloss.JoinVertical(lipgloss.Left, formParts...)

	slip := m.slip()
	gross := slip.Gross()
	preview := lipgloss.JoinVertical(lipgloss.Left,
		m.deps.Theme.ReviewKey.Render("Employee")+m.deps.Theme.ReviewValue.Render(orDash(slip.EmployeeName)),
		m.deps.Theme.ReviewKey.Render("Period")+m.deps.Theme.ReviewValue.Render(orDash(slip.PayPeriod)),
		"",
		m.deps.Theme.ReviewKey.Render("Gross pay")+
			lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true).Render(model.FormatINR(gross)),
		lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).Width(40).
			Render(model.AmountInWords(gross)+" Rupees Only"),
	)
	previewBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(1, 2).
		Render(preview)

	legend := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render("Tab to move between fields, Esc to go back")

	return lipgloss.JoinVertical(lipgloss.Left,
		title, "",
		lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", previewBox),
		legend)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
