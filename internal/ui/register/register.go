// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package register binds the student-registration wizard to the screen:
// one page per step, field inputs persisted on every keystroke, and an
// atomic submit from the review page.
package register

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
	"github.com/Web-Plus-Academy/lms-admin/internal/wizard"
)

// fieldSpec describes how one wizard field renders.
type fieldSpec struct {
	path        wizard.Path
	label       string
	placeholder string
	password    bool
	readOnly    bool
}

// stepFields lists the visible fields per step, in tab order. The review
// step renders the accumulated draft instead.
var stepFields = [][]fieldSpec{
	{
		{path: wizard.StuUserID, label: "User ID", readOnly: true},
		{path: wizard.StuEmail, label: "Email", placeholder: "student@example.com"},
		{path: wizard.StuPassword, label: "Password", password: true},
	},
	{
		{path: wizard.StuFullName, label: "Full name"},
		{path: wizard.StuDOB, label: "Date of birth", placeholder: "YYYY-MM-DD"},
		{path: wizard.StuGender, label: "Gender", placeholder: "male / female / other"},
		{path: wizard.StuPhone, label: "Phone", placeholder: "10 digits"},
		{path: wizard.StuSecondaryPhone, label: "Secondary phone (optional)"},
		{path: wizard.StuAvatar, label: "Avatar URL (optional)"},
	},
	{
		{path: wizard.StuDoorNo, label: "Door no"},
		{path: wizard.StuStreet, label: "Street"},
		{path: wizard.StuCity, label: "City"},
		{path: wizard.StuState, label: "State"},
		{path: wizard.StuPincode, label: "Pincode", placeholder: "6 digits"},
	},
	{
		{path: wizard.StuBatch, label: "Batch", placeholder: "e.g. 4"},
		{path: wizard.StuEnrollment, label: "Enrollment date", placeholder: "YYYY-MM-DD"},
		{path: wizard.StuCourseName, label: "Course name"},
	},
}

type submitResultMsg struct{ err error }

// Model is the registration wizard screen.
type Model struct {
	deps ui.Deps
	ctrl *wizard.Controller

	inputs   []components.LabeledInput
	specs    []fieldSpec
	focus    int
	loading  bool
	spin     spinner.Model
	progress components.StepProgress
	width    int
}

// New restores (or starts) the draft and opens its current step.
func New(deps ui.Deps) (Model, error) {
	ctrl := wizard.NewController(deps.Store, wizard.StudentForm(),
		wizard.StudentSubmitter(deps.API.RegisterStudent))
	if err := ctrl.Initialize(); err != nil {
		return Model{}, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Indigo)

	m := Model{
		deps:     deps,
		ctrl:     ctrl,
		spin:     sp,
		progress: components.NewStepProgress(deps.Theme),
	}
	m.mountStep()
	return m, nil
}

// mountStep rebuilds the inputs for the current step from the draft.
func (m *Model) mountStep() {
	step := m.ctrl.Step()
	m.inputs = nil
	m.specs = nil
	m.focus = 0
	if step > len(stepFields) {
		return // review step has no inputs
	}
	for _, spec := range stepFields[step-1] {
		var in components.LabeledInput
		if spec.password {
			in = components.NewPasswordInput(m.deps.Theme, spec.label)
		} else {
			in = components.NewLabeledInput(m.deps.Theme, spec.label, spec.placeholder)
		}
		in.ReadOnly = spec.readOnly
		in.SetValue(m.ctrl.Value(spec.path))
		m.inputs = append(m.inputs, in)
		m.specs = append(m.specs, spec)
	}
	m.focusField(m.firstEditable())
}

func (m *Model) firstEditable() int {
	for i := range m.inputs {
		if !m.inputs[i].ReadOnly {
			return i
		}
	}
	return 0
}

func (m *Model) focusField(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	i := m.focus
	for range m.inputs {
		i = (i + delta + len(m.inputs)) % len(m.inputs)
		if !m.inputs[i].ReadOnly {
			break
		}
	}
	m.focusField(i)
}

// Init is a no-op; the draft was loaded in New.
func (m Model) Init() tea.Cmd { return nil }

// Update drives the wizard: field edits persist immediately, enter
// advances (or moves focus), esc retreats, ctrl+s submits from review.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.SetWidth(msg.Width)
		return m, nil

	case submitResultMsg:
		m.loading = false
		if msg.err != nil {
			return m, components.ShowError("Registration failed: " + msg.err.Error())
		}
		m.mountStep() // back to the empty step 1
		return m, tea.Batch(
			components.ShowSuccess("Student registered"),
			components.Navigate(router.RouteDashboard),
		)

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			if m.ctrl.Step() == 1 {
				return m, components.Navigate(router.RouteDashboard)
			}
			if err := m.ctrl.Retreat(); err != nil {
				return m, components.ShowError(err.Error())
			}
			m.mountStep()
			return m, nil
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			if m.onReview() {
				return m.submit()
			}
			if m.focus != m.lastEditable() {
				m.moveFocus(1)
				return m, nil
			}
			return m.advance()
		case "ctrl+s":
			if m.onReview() {
				return m.submit()
			}
			return m, nil
		case "ctrl+x":
			if err := m.ctrl.Clear(); err != nil {
				return m, components.ShowError(err.Error())
			}
			m.mountStep()
			return m, components.ShowStatus("Draft cleared")
		}
	}

	// Forward everything else to the focused input and persist the edit.
	if len(m.inputs) > 0 {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		spec := m.specs[m.focus]
		if !spec.readOnly {
			if err := m.ctrl.SetField(spec.path, m.inputs[m.focus].Value()); err != nil {
				return m, components.ShowError(err.Error())
			}
			m.refreshDerived()
		}
		return m, cmd
	}

	if m.loading {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refreshDerived re-reads read-only fields so a derivation triggered by
// this edit shows up immediately.
func (m *Model) refreshDerived() {
	for i, spec := range m.specs {
		if spec.readOnly {
			m.inputs[i].SetValue(m.ctrl.Value(spec.path))
		}
	}
}

func (m *Model) lastEditable() int {
	last := 0
	for i := range m.inputs {
		if !m.inputs[i].ReadOnly {
			last = i
		}
	}
	return last
}

func (m Model) onReview() bool { return m.ctrl.Step() == m.ctrl.StepCount() }

func (m Model) advance() (ui.Screen, tea.Cmd) {
	if err := m.ctrl.Advance(); err != nil {
		return m, components.ShowError(err.Error())
	}
	m.mountStep()
	return m, nil
}

func (m Model) submit() (ui.Screen, tea.Cmd) {
	if m.ctrl.Submitting() {
		return m, nil
	}
	m.loading = true
	ctrl := m.ctrl
	timeout := m.deps.Config.ServerTimeout()
	send := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return submitResultMsg{err: ctrl.Submit(ctx)}
	}
	return m, tea.Batch(m.spin.Tick, send)
}

// View renders the progress header plus either the step's inputs or the
// review summary.
func (m Model) View() string {
	def := m.ctrl.StepDef()
	header := m.progress.View(m.ctrl.Step(), m.ctrl.StepCount(), def.Title)

	var body string
	if m.onReview() {
		body = m.viewReview()
	} else {
		parts := make([]string, 0, len(m.inputs)*2)
		for _, in := range m.inputs {
			parts = append(parts, in.View(), "")
		}
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	var footer string
	switch {
	case m.loading:
		footer = m.spin.View() + " Submitting..."
	case m.onReview():
		footer = lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("Enter to submit, Esc to go back, Ctrl+X to clear the draft")
	default:
		footer = lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render("Enter to continue, Esc to go back, Ctrl+X to clear the draft")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

// viewReview renders the accumulated draft, grouped the way the form
// groups it.
func (m Model) viewReview() string {
	draft := m.ctrl.Draft()
	rows := make([]string, 0, 16)
	add := func(label string, p wizard.Path) {
		v := draft.Fields.Get(p)
		if v == "" {
			v = "-"
		}
		if p == wizard.StuPassword {
			v = "********"
		}
		rows = append(rows,
			m.deps.Theme.ReviewKey.Render(label)+m.deps.Theme.ReviewValue.Render(v))
	}

	add("User ID", wizard.StuUserID)
	add("Email", wizard.StuEmail)
	add("Password", wizard.StuPassword)
	add("Full name", wizard.StuFullName)
	add("Date of birth", wizard.StuDOB)
	add("Gender", wizard.StuGender)
	add("Phone", wizard.StuPhone)
	add("Secondary phone", wizard.StuSecondaryPhone)
	add("Avatar", wizard.StuAvatar)
	add("Door no", wizard.StuDoorNo)
	add("Street", wizard.StuStreet)
	add("City", wizard.StuCity)
	add("State", wizard.StuState)
	add("Pincode", wizard.StuPincode)
	add("Batch", wizard.StuBatch)
	add("Enrollment date", wizard.StuEnrollment)
	add("Course", wizard.StuCourseName)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
