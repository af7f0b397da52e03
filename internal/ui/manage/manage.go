// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package manage is the resource management screen: courses, internships,
// events, workshops, plus students and assignments scoped to a cohort.
// Each tab loads a list; entries can be added or edited through a short
// inline form, and the published resources can be deleted after
// confirmation. Full student creation stays in the registration wizard.
package manage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Web-Plus-Academy/lms-admin/internal/model"
	"github.com/Web-Plus-Academy/lms-admin/internal/router"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/components"
	"github.com/Web-Plus-Academy/lms-admin/internal/ui/styles"
	"github.com/Web-Plus-Academy/lms-admin/internal/util"
)

// kinds in tab order. The first four double as the backend path segments;
// students and assignments live under the adminAccess routes instead.
var kinds = []string{"course", "internship", "event", "workshop", "student", "assignment"}

var kindTitles = map[string]string{
	"course":     "Courses",
	"internship": "Internships",
	"event":      "Events",
	"workshop":   "Workshops",
	"student":    "Students",
	"assignment": "Assignments",
}

// row is one listed entry, reduced to what the table shows. data keeps
// the full record so an edit can send the whole thing back.
type row struct {
	id    string
	label string
	meta  string
	data  any
}

type listMsg struct {
	kind string
	rows []row
	err  error
}

type deleteMsg struct {
	kind string
	id   string
	err  error
}

type saveMsg struct {
	kind    string
	created bool
	err     error
}

// mode selects which surface owns the keyboard.
type mode int

const (
	modeList mode = iota
	modeCohort
	modeEdit
)

// editorField is one input of the inline add/edit form.
type editorField struct {
	label       string
	placeholder string
}

// editorFields maps each kind to its quick-form inputs. The remaining
// record fields ride along unchanged on edit and stay zero on add.
func editorFields(kind string) []editorField {
	switch kind {
	case "course":
		return []editorField{{"Title", "Full Stack Bootcamp"}, {"Instructor", ""}}
	case "internship":
		return []editorField{{"Role", "SDE Intern"}, {"Mode", "remote / onsite"}}
	case "event":
		return []editorField{{"Name", ""}, {"Speaker", ""}}
	case "workshop":
		return []editorField{{"Topic", ""}, {"Trainer", ""}}
	case "student":
		return []editorField{{"Phone", ""}, {"Email", ""}}
	case "assignment":
		return []editorField{{"Title", ""}, {"Due date", "YYYY-MM-DD"}, {"Week", "1"}}
	}
	return nil
}

// canAdd reports whether the tab supports the quick-add form. Students
// are created by the registration wizard only.
func canAdd(kind string) bool { return kind != "student" }

// canDelete reports whether the tab supports deletion. The adminAccess
// routes expose no delete for students or allocated assignments.
func canDelete(kind string) bool { return kind != "student" && kind != "assignment" }

// cohortScoped reports whether the tab lists per batch/course.
func cohortScoped(kind string) bool { return kind == "student" || kind == "assignment" }

// Model is the resource management screen.
type Model struct {
	deps ui.Deps

	mode      mode
	kind      int
	rows      []row
	cursor    int
	loading   bool
	confirmID string
	spin      spinner.Model
	width     int

	// Cohort scope shared by the student and assignment tabs.
	batch        int
	course       string
	cohortInputs []components.LabeledInput
	cohortFocus  int

	// Inline add/edit form.
	creating bool
	editRow  row
	inputs   []components.LabeledInput
	focus    int
}

// New builds the screen on the courses tab.
func New(deps ui.Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Indigo)
	return Model{deps: deps, spin: sp, loading: true}
}

// Init loads the first tab.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

// ===== LOADING =====

func (m Model) load() tea.Cmd {
	deps := m.deps
	kind := kinds[m.kind]
	batch, course := m.batch, m.course
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
		defer cancel()

		var rows []row
		var err error
		switch kind {
		case "course":
			courses, cerr := deps.API.Courses(ctx)
			err = cerr
			for _, c := range courses {
				rows = append(rows, row{id: c.ID, label: c.Title,
					meta: fmt.Sprintf("%s · %d students", c.Category, c.Students), data: c})
			}
		case "internship":
			internships, cerr := deps.API.Internships(ctx)
			err = cerr
			for _, in := range internships {
				rows = append(rows, row{id: in.ID, label: in.Role,
					meta: fmt.Sprintf("%s · %d openings", in.Mode, in.Openings), data: in})
			}
		case "event":
			events, cerr := deps.API.Events(ctx)
			err = cerr
			for _, ev := range events {
				rows = append(rows, row{id: ev.ID, label: ev.Name,
					meta: ev.Date + " · " + ev.Speaker, data: ev})
			}
		case "workshop":
			workshops, cerr := deps.API.Workshops(ctx)
			err = cerr
			for _, w := range workshops {
				rows = append(rows, row{id: w.ID, label: w.Topic,
					meta: w.Schedule + " · " + w.Trainer, data: w})
			}
		case "student":
			students, cerr := deps.API.StudentsByBatch(ctx, batch, course)
			err = cerr
			for _, s := range students {
				rows = append(rows, row{id: s.UserID, label: s.FullName,
					meta: s.UserID + " · " + s.Phone, data: s})
			}
		case "assignment":
			tasks, cerr := deps.API.TasksFor(ctx, batch, course)
			err = cerr
			for _, a := range tasks {
				rows = append(rows, row{id: fmt.Sprintf("task-%d", a.TaskNo), label: a.Title,
					meta: fmt.Sprintf("week %d · due %s", a.Week, a.DueDate), data: a})
			}
		}
		return listMsg{kind: kind, rows: rows, err: err}
	}
}

func (m Model) deleteSelected() tea.Cmd {
	deps := m.deps
	kind := kinds[m.kind]
	id := m.rows[m.cursor].id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
		defer cancel()
		err := deps.API.DeleteResource(ctx, kind, id)
		return deleteMsg{kind: kind, id: id, err: err}
	}
}

// ===== INLINE FORM =====

// openEditor builds the form inputs, prefilled from the selected row
// unless creating.
func (m *Model) openEditor(creating bool) tea.Cmd {
	kind := kinds[m.kind]
	specs := editorFields(kind)
	m.inputs = make([]components.LabeledInput, len(specs))
	for i, s := range specs {
		m.inputs[i] = components.NewLabeledInput(m.deps.Theme, s.label, s.placeholder)
	}

	m.creating = creating
	if !creating {
		m.editRow = m.rows[m.cursor]
		values := currentValues(kind, m.editRow.data)
		for i := range values {
			if i < len(m.inputs) {
				m.inputs[i].SetValue(values[i])
			}
		}
	}
	m.mode = modeEdit
	m.focus = 0
	return m.inputs[0].Focus()
}

// currentValues extracts the editable fields in form order.
func currentValues(kind string, data any) []string {
	switch kind {
	case "course":
		c := data.(model.Course)
		return []string{c.Title, c.Instructor}
	case "internship":
		in := data.(model.Internship)
		return []string{in.Role, in.Mode}
	case "event":
		ev := data.(model.Event)
		return []string{ev.Name, ev.Speaker}
	case "workshop":
		w := data.(model.Workshop)
		return []string{w.Topic, w.Trainer}
	case "student":
		s := data.(model.Student)
		return []string{s.Phone, s.Email}
	case "assignment":
		a := data.(model.Assignment)
		return []string{a.Title, a.DueDate, strconv.Itoa(a.Week)}
	}
	return nil
}

// save issues the backend call for the open form. The form values and
// the original record are captured here so the command closure does not
// race the model.
func (m Model) save() tea.Cmd {
	deps := m.deps
	kind := kinds[m.kind]
	creating := m.creating
	data := m.editRow.data
	batch, course := m.batch, m.course

	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
		defer cancel()

		var err error
		switch kind {
		case "course":
			c := model.Course{}
			if !creating {
				c = data.(model.Course)
			}
			c.Title, c.Instructor = values[0], values[1]
			if creating {
				err = deps.API.AddCourse(ctx, c)
			} else {
				err = deps.API.UpdateCourse(ctx, c)
			}
		case "internship":
			in := model.Internship{}
			if !creating {
				in = data.(model.Internship)
			}
			in.Role, in.Mode = values[0], values[1]
			if creating {
				err = deps.API.AddInternship(ctx, in)
			} else {
				err = deps.API.UpdateInternship(ctx, in)
			}
		case "event":
			ev := model.Event{}
			if !creating {
				ev = data.(model.Event)
			}
			ev.Name, ev.Speaker = values[0], values[1]
			if creating {
				err = deps.API.AddEvent(ctx, ev)
			} else {
				err = deps.API.UpdateEvent(ctx, ev)
			}
		case "workshop":
			w := model.Workshop{}
			if !creating {
				w = data.(model.Workshop)
			}
			w.Topic, w.Trainer = values[0], values[1]
			if creating {
				err = deps.API.AddWorkshop(ctx, w)
			} else {
				err = deps.API.UpdateWorkshop(ctx, w)
			}
		case "student":
			s := data.(model.Student)
			s.Phone, s.Email = values[0], values[1]
			err = deps.API.UpdateStudentProfile(ctx, s)
		case "assignment":
			if creating {
				week, _ := strconv.Atoi(values[2])
				a := model.Assignment{Batch: batch, Course: course, Week: week,
					Title: values[0], DueDate: values[1]}
				err = deps.API.AssignTask(ctx, a)
			} else {
				a := data.(model.Assignment)
				a.Title, a.DueDate = values[0], values[1]
				if week, werr := strconv.Atoi(values[2]); werr == nil {
					a.Week = week
				}
				err = deps.API.EditTask(ctx, a)
			}
		}
		return saveMsg{kind: kind, created: creating, err: err}
	}
}

// ===== UPDATE =====

// Update handles tab switches, selection, the cohort form, the inline
// add/edit form, and the delete confirmation.
func (m Model) Update(msg tea.Msg) (ui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case listMsg:
		if msg.kind != kinds[m.kind] {
			return m, nil // stale response from a previous tab
		}
		m.loading = false
		if msg.err != nil {
			return m, components.ShowError("Load failed: " + msg.err.Error())
		}
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
		return m, nil

	case deleteMsg:
		if msg.err != nil {
			return m, components.ShowError("Delete failed: " + msg.err.Error())
		}
		m.loading = true
		return m, tea.Batch(
			components.ShowSuccess("Deleted "+msg.kind),
			m.spin.Tick,
			m.load(),
		)

	case saveMsg:
		if msg.err != nil {
			return m, components.ShowError("Save failed: " + msg.err.Error())
		}
		m.mode = modeList
		m.inputs = nil
		m.loading = true
		verb := "Updated "
		if msg.created {
			verb = "Added "
		}
		return m, tea.Batch(
			components.ShowSuccess(verb+msg.kind),
			m.spin.Tick,
			m.load(),
		)

	case tea.KeyMsg:
		switch m.mode {
		case modeCohort:
			return m.updateCohort(msg)
		case modeEdit:
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	if m.loading {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (ui.Screen, tea.Cmd) {
	// A pending confirmation swallows everything except y/n.
	if m.confirmID != "" {
		switch msg.String() {
		case "y":
			m.confirmID = ""
			return m, m.deleteSelected()
		case "n", "esc":
			m.confirmID = ""
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, components.Navigate(router.RouteDashboard)
	case "1", "2", "3", "4", "5", "6":
		m.kind = int(msg.String()[0] - '1')
		m.rows = nil
		m.cursor = 0
		cmd := m.enterTab()
		return m, cmd
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	case "r":
		if cohortScoped(kinds[m.kind]) && !m.cohortSet() {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.load())
	case "c":
		if cohortScoped(kinds[m.kind]) {
			cmd := m.openCohort()
			return m, cmd
		}
		return m, nil
	case "a":
		if canAdd(kinds[m.kind]) {
			if cohortScoped(kinds[m.kind]) && !m.cohortSet() {
				cmd := m.openCohort()
				return m, cmd
			}
			cmd := m.openEditor(true)
			return m, cmd
		}
		return m, nil
	case "e":
		if len(m.rows) > 0 {
			cmd := m.openEditor(false)
			return m, cmd
		}
		return m, nil
	case "d":
		if canDelete(kinds[m.kind]) && len(m.rows) > 0 {
			m.confirmID = m.rows[m.cursor].id
		}
		return m, nil
	}
	return m, nil
}

// enterTab starts the load for the newly selected tab, or asks for a
// cohort first when the tab needs one.
func (m *Model) enterTab() tea.Cmd {
	if cohortScoped(kinds[m.kind]) && !m.cohortSet() {
		return m.openCohort()
	}
	m.loading = true
	return tea.Batch(m.spin.Tick, m.load())
}

func (m Model) cohortSet() bool { return m.batch > 0 && m.course != "" }

func (m *Model) openCohort() tea.Cmd {
	m.cohortInputs = []components.LabeledInput{
		components.NewLabeledInput(m.deps.Theme, "Batch", "5"),
		components.NewLabeledInput(m.deps.Theme, "Course", "Full Stack Bootcamp"),
	}
	if m.batch > 0 {
		m.cohortInputs[0].SetValue(strconv.Itoa(m.batch))
	}
	m.cohortInputs[1].SetValue(m.course)
	m.cohortFocus = 0
	m.mode = modeCohort
	m.loading = false
	return m.cohortInputs[0].Focus()
}

func (m Model) updateCohort(msg tea.KeyMsg) (ui.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.cohortInputs = nil
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.cohortInputs[m.cohortFocus].Blur()
		m.cohortFocus = (m.cohortFocus + 1) % len(m.cohortInputs)
		return m, m.cohortInputs[m.cohortFocus].Focus()
	case "enter":
		batch, err := strconv.Atoi(m.cohortInputs[0].Value())
		if err != nil || batch <= 0 {
			return m, components.ShowError("Batch must be a positive number")
		}
		if m.cohortInputs[1].Value() == "" {
			return m, components.ShowError("Course is required")
		}
		m.batch = batch
		m.course = m.cohortInputs[1].Value()
		m.mode = modeList
		m.cohortInputs = nil
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.load())
	}

	var cmd tea.Cmd
	m.cohortInputs[m.cohortFocus], cmd = m.cohortInputs[m.cohortFocus].Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.KeyMsg) (ui.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.inputs = nil
		return m, nil
	case "tab", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case "shift+tab", "up":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.inputs[m.focus].Blur()
			m.focus++
			return m, m.inputs[m.focus].Focus()
		}
		return m, m.save()
	case "ctrl+s":
		return m, m.save()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// ===== VIEW =====

// View renders the tab bar, the active surface, and the key legend.
func (m Model) View() string {
	tabs := make([]string, len(kinds))
	for i, k := range kinds {
		label := fmt.Sprintf("%d %s", i+1, kindTitles[k])
		if i == m.kind {
			tabs[i] = m.deps.Theme.TableRowSel.Render(" " + label + " ")
		} else {
			tabs[i] = m.deps.Theme.TableRow.Render(" " + label + " ")
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch {
	case m.mode == modeCohort:
		body = m.viewForm("Select cohort", m.cohortInputs)
	case m.mode == modeEdit:
		title := "Edit " + kinds[m.kind]
		if m.creating {
			title = "New " + kinds[m.kind]
		}
		body = m.viewForm(title, m.inputs)
	case m.loading:
		body = m.spin.View() + " Loading..."
	case cohortScoped(kinds[m.kind]) && !m.cohortSet():
		body = lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Press c to select a batch and course.")
	case len(m.rows) == 0:
		body = lipgloss.NewStyle().Foreground(styles.TextMuted).Render("Nothing here yet.")
	default:
		width := m.width - 4
		if width < 40 {
			width = 40
		}
		lines := make([]string, 0, len(m.rows))
		for i, r := range m.rows {
			line := util.PadRight(util.Truncate(r.label, 32), 34) +
				lipgloss.NewStyle().Foreground(styles.TextMuted).Render(util.Truncate(r.meta, width-36))
			if i == m.cursor {
				line = m.deps.Theme.TableRowSel.Render(line)
			} else {
				line = m.deps.Theme.TableRow.Render(line)
			}
			lines = append(lines, line)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "",
		lipgloss.NewStyle().Foreground(styles.TextMuted).Render(m.legend()))
}

func (m Model) viewForm(title string, inputs []components.LabeledInput) string {
	parts := []string{m.deps.Theme.StepTitle.Render(title), ""}
	for _, in := range inputs {
		parts = append(parts, in.View(), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) legend() string {
	if m.confirmID != "" {
		return styles.RenderWarning("Delete selected " + kinds[m.kind] + "? y / n")
	}
	switch m.mode {
	case modeCohort:
		return "tab next field   enter load   esc cancel"
	case modeEdit:
		return "tab next field   enter/ctrl+s save   esc cancel"
	}

	kind := kinds[m.kind]
	legend := "1-6 switch   j/k move   e edit"
	if canAdd(kind) {
		legend += "   a add"
	}
	if canDelete(kind) {
		legend += "   d delete"
	}
	if cohortScoped(kind) {
		legend += "   c cohort"
	}
	return legend + "   r refresh   esc back"
}
