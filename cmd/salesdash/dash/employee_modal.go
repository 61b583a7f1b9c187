package dash

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdash/internal/erp"
	"salesdash/internal/logging"
)

// modalMode is what the modal was opened to do.
type modalMode int

const (
	modeAdd modalMode = iota
	modeEdit
	modeDelete
)

// modalPhase is where the modal is in its flow. Add opens straight on the
// form; edit opens on the lookup so a different id can be pulled in;
// delete opens on the confirmation.
type modalPhase int

const (
	phaseSearch modalPhase = iota
	phaseForm
	phaseConfirmDelete
)

// modalResultKind tells the host how to patch its rows.
type modalResultKind int

const (
	modalCancelled modalResultKind = iota
	modalCreated
	modalUpdated
	modalDeleted
)

type modalResult struct {
	kind modalResultKind
	row  TeamRow
}

// modalLookupMsg delivers an employee fetched during the edit lookup.
type modalLookupMsg struct {
	seq int
	row TeamRow
	err error
}

// modalSavedMsg delivers the outcome of a create, update or delete.
type modalSavedMsg struct {
	seq    int
	result modalResult
	err    error
}

const (
	fieldName = iota
	fieldEmail
	fieldDesignation
	fieldDepartment
	fieldIncentives
	fieldPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Email", "Designation", "Department",
	"Incentives (comma separated)", "Password",
}

// employeeModal is the add/edit/delete dialog hosted by the team page. It
// reuses the page's event loop: the host forwards messages and closes the
// modal when Update reports a result.
type employeeModal struct {
	app *App

	mode  modalMode
	phase modalPhase
	base  TeamRow // record being edited or deleted

	lookup textinput.Model
	inputs [fieldCount]textinput.Model
	focus  int

	spin    spinner.Model
	busy    bool
	seq     int
	errText string
}

func newAddModal(app *App) *employeeModal {
	m := newModal(app, modeAdd)
	m.phase = phaseForm
	m.inputs[fieldName].Focus()
	return m
}

func newEditModal(app *App, row TeamRow) *employeeModal {
	m := newModal(app, modeEdit)
	m.phase = phaseSearch
	m.base = row
	m.lookup.SetValue(row.ID)
	m.lookup.Focus()
	return m
}

func newDeleteModal(app *App, row TeamRow) *employeeModal {
	m := newModal(app, modeDelete)
	m.phase = phaseConfirmDelete
	m.base = row
	return m
}

func newModal(app *App, mode modalMode) *employeeModal {
	m := &employeeModal{app: app, mode: mode}

	m.lookup = textinput.New()
	m.lookup.Placeholder = "employee id"
	m.lookup.CharLimit = 48
	m.lookup.Width = 40

	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.CharLimit = 120
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldPassword].EchoCharacter = '*'

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = app.Styles.Spinner
	return m
}

func (m *employeeModal) Init() tea.Cmd {
	return textinput.Blink
}

// Focused reports whether a text input is capturing keystrokes.
func (m *employeeModal) Focused() bool {
	return m.phase == phaseSearch || m.phase == phaseForm
}

// Update consumes one message. A non-nil result means the modal is done
// and the host should close it.
func (m *employeeModal) Update(msg tea.Msg) (*modalResult, tea.Cmd) {
	switch msg := msg.(type) {
	case modalLookupMsg:
		if msg.seq != m.seq {
			return nil, nil
		}
		m.busy = false
		if msg.err != nil {
			if erp.IsNotFound(msg.err) {
				m.errText = "no employee with that id"
			} else {
				m.errText = msg.err.Error()
			}
			return nil, nil
		}
		m.base = msg.row
		m.fillForm(msg.row)
		m.phase = phaseForm
		m.setFocus(fieldName)
		return nil, nil

	case modalSavedMsg:
		if msg.seq != m.seq {
			return nil, nil
		}
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return nil, nil
		}
		res := msg.result
		return &res, nil

	case spinner.TickMsg:
		if !m.busy {
			return nil, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return nil, cmd

	case tea.KeyMsg:
		if m.busy {
			return nil, nil
		}
		return m.handleKey(msg)
	}
	return nil, nil
}

func (m *employeeModal) handleKey(msg tea.KeyMsg) (*modalResult, tea.Cmd) {
	if msg.String() == "esc" {
		return &modalResult{kind: modalCancelled}, nil
	}

	switch m.phase {
	case phaseSearch:
		if msg.String() == "enter" {
			return nil, m.runLookup()
		}
		var cmd tea.Cmd
		m.lookup, cmd = m.lookup.Update(msg)
		return nil, cmd

	case phaseForm:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return nil, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return nil, nil
		case "enter":
			return nil, m.runSave()
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return nil, cmd

	case phaseConfirmDelete:
		switch msg.String() {
		case "y", "enter":
			return nil, m.runDelete()
		case "n":
			return &modalResult{kind: modalCancelled}, nil
		}
	}
	return nil, nil
}

func (m *employeeModal) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *employeeModal) fillForm(row TeamRow) {
	m.inputs[fieldName].SetValue(row.Name)
	m.inputs[fieldEmail].SetValue(row.Email)
	m.inputs[fieldDesignation].SetValue(row.Designation)
	m.inputs[fieldDepartment].SetValue(row.Department)
	m.inputs[fieldIncentives].SetValue(strings.Join(row.Incentives, ", "))
	m.inputs[fieldPassword].SetValue("")
}

// runLookup fetches the employee named in the lookup field, incentives
// included. Totals carry over from the hosting row when the id matches.
func (m *employeeModal) runLookup() tea.Cmd {
	id := strings.TrimSpace(m.lookup.Value())
	if id == "" {
		m.errText = "enter an employee id"
		return nil
	}

	m.errText = ""
	m.busy = true
	m.seq++
	seq := m.seq
	client := m.app.Client
	base := m.base

	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()

		emp, err := client.GetEmployee(ctx, id)
		if err != nil {
			return modalLookupMsg{seq: seq, err: err}
		}
		incentives, err := client.IncentiveSlab(ctx, id)
		if err != nil {
			logging.ViewWarn("incentive lookup for %s: %v", id, err)
			incentives = nil
		}
		row := TeamRow{
			ID:          emp.ID,
			Name:        emp.User.Name,
			Email:       emp.User.Email,
			Designation: emp.Designation,
			Department:  emp.Department,
			Incentives:  incentives,
		}
		if base.ID == emp.ID {
			row.TotalSales = base.TotalSales
		} else if total, err := client.TotalSalesFor(ctx, id); err == nil {
			row.TotalSales = total
		}
		return modalLookupMsg{seq: seq, row: row}
	}
	return tea.Batch(m.spin.Tick, fetch)
}

// parseIncentives splits the comma-separated field into trimmed non-empty
// labels.
func parseIncentives(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (m *employeeModal) runSave() tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	designation := strings.TrimSpace(m.inputs[fieldDesignation].Value())
	department := strings.TrimSpace(m.inputs[fieldDepartment].Value())
	incentives := parseIncentives(m.inputs[fieldIncentives].Value())
	password := m.inputs[fieldPassword].Value()

	switch {
	case name == "":
		m.errText = "name is required"
		return nil
	case email == "" || !strings.Contains(email, "@"):
		m.errText = "enter a valid email address"
		return nil
	case m.mode == modeAdd && len(password) < 6:
		m.errText = "password must be at least 6 characters"
		return nil
	}

	m.errText = ""
	m.busy = true
	m.seq++
	seq := m.seq
	client := m.app.Client
	mode := m.mode
	base := m.base

	save := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()

		if mode == modeAdd {
			emp, err := client.CreateEmployee(ctx, erp.CreateEmployeeRequest{
				Name:        name,
				Email:       email,
				Password:    password,
				Role:        "employee",
				Designation: designation,
				Department:  department,
			})
			if err != nil {
				return modalSavedMsg{seq: seq, err: err}
			}
			return modalSavedMsg{seq: seq, result: modalResult{
				kind: modalCreated,
				row: TeamRow{
					ID:          emp.ID,
					Name:        emp.User.Name,
					Email:       emp.User.Email,
					Designation: emp.Designation,
					Department:  emp.Department,
					Incentives:  incentives,
				},
			}}
		}

		emp, err := client.UpdateEmployee(ctx, base.ID, erp.UpdateEmployeeRequest{
			Name:        name,
			Email:       email,
			Password:    password, // empty means unchanged
			Designation: designation,
			Department:  department,
		})
		if err != nil {
			return modalSavedMsg{seq: seq, err: err}
		}
		return modalSavedMsg{seq: seq, result: modalResult{
			kind: modalUpdated,
			row: TeamRow{
				ID:          emp.ID,
				Name:        emp.User.Name,
				Email:       emp.User.Email,
				Designation: emp.Designation,
				Department:  emp.Department,
				Incentives:  incentives,
				TotalSales:  base.TotalSales,
			},
		}}
	}
	return tea.Batch(m.spin.Tick, save)
}

func (m *employeeModal) runDelete() tea.Cmd {
	m.busy = true
	m.seq++
	seq := m.seq
	client := m.app.Client
	base := m.base

	del := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		if err := client.DeleteEmployee(ctx, base.ID); err != nil {
			return modalSavedMsg{seq: seq, err: err}
		}
		return modalSavedMsg{seq: seq, result: modalResult{kind: modalDeleted, row: base}}
	}
	return tea.Batch(m.spin.Tick, del)
}

func (m *employeeModal) View(width int) string {
	s := m.app.Styles

	var title string
	switch m.mode {
	case modeAdd:
		title = "Add employee"
	case modeEdit:
		title = "Edit employee"
	case modeDelete:
		title = "Remove employee"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSearch:
		b.WriteString(s.FormLabel.Render("Employee ID"))
		b.WriteString("\n")
		b.WriteString(m.lookup.View())
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("enter to look up, esc to cancel"))

	case phaseForm:
		for i, in := range m.inputs {
			b.WriteString(s.FormLabel.Render(fieldLabels[i]))
			b.WriteString("\n")
			b.WriteString(in.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		hint := "enter to save, esc to cancel"
		if m.mode == modeEdit {
			hint = "enter to save, esc to cancel (blank password keeps the old one)"
		}
		b.WriteString(s.Muted.Render(hint))

	case phaseConfirmDelete:
		b.WriteString(fmt.Sprintf("Remove %s <%s>?", m.base.Name, m.base.Email))
		b.WriteString("\n\n")
		b.WriteString(s.Error.Render("y") + " confirm   " + s.Muted.Render("n / esc") + " cancel")
	}

	if m.busy {
		b.WriteString("\n\n" + m.spin.View() + " working...")
	} else if m.errText != "" {
		b.WriteString("\n\n" + s.Error.Render(m.errText))
	}

	card := s.Card.Render(b.String())
	return lipgloss.Place(width, lipgloss.Height(card)+2, lipgloss.Center, lipgloss.Top, card)
}
