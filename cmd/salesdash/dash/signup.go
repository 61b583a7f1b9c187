package dash

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// gotoSignupMsg / gotoSigninMsg switch between the two auth pages.
	gotoSignupMsg struct{}
	gotoSigninMsg struct{}
)

// signupDoneMsg carries the result of a registration attempt.
type signupDoneMsg struct {
	seq int
	err error
}

const (
	signupFieldName = iota
	signupFieldEmail
	signupFieldPassword
	signupFieldConfirm
	signupFieldCount
)

// signupRoles the remote API accepts; toggled with left/right rather than
// typed.
var signupRoles = []string{"manager", "employee"}

type signupModel struct {
	app *App

	inputs  [signupFieldCount]textinput.Model
	focus   int
	roleIdx int
	spin    spinner.Model
	busy    bool
	seq     int
	errText string
}

func newSignupModel(app *App) *signupModel {
	m := &signupModel{app: app}

	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		in.Width = 40
		return in
	}
	m.inputs[signupFieldName] = mk("Full name")
	m.inputs[signupFieldEmail] = mk("you@company.com")
	m.inputs[signupFieldPassword] = mk("password")
	m.inputs[signupFieldConfirm] = mk("confirm password")
	for _, i := range []int{signupFieldPassword, signupFieldConfirm} {
		m.inputs[i].EchoMode = textinput.EchoPassword
		m.inputs[i].EchoCharacter = '*'
	}
	m.inputs[signupFieldName].Focus()

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = app.Styles.Spinner
	return m
}

func (m *signupModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case signupDoneMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.busy = false
		if msg.err != nil {
			// Registration failures surface the remote detail verbatim,
			// unlike login which stays generic.
			m.errText = msg.err.Error()
			return nil
		}
		return func() tea.Msg { return sessionChangedMsg{} }

	case spinner.TickMsg:
		if !m.busy {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch msg.String() {
		case "esc":
			return func() tea.Msg { return gotoSigninMsg{} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % signupFieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + signupFieldCount - 1) % signupFieldCount)
			return nil
		case "left", "right":
			m.roleIdx = (m.roleIdx + 1) % len(signupRoles)
			return nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *signupModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// validate runs the client-side checks before anything hits the wire.
func (m *signupModel) validate() string {
	name := strings.TrimSpace(m.inputs[signupFieldName].Value())
	email := strings.TrimSpace(m.inputs[signupFieldEmail].Value())
	password := m.inputs[signupFieldPassword].Value()
	confirm := m.inputs[signupFieldConfirm].Value()

	switch {
	case name == "":
		return "name is required"
	case email == "" || !strings.Contains(email, "@"):
		return "enter a valid email address"
	case len(password) < 6:
		return "password must be at least 6 characters"
	case password != confirm:
		return "passwords do not match"
	}
	return ""
}

func (m *signupModel) submit() tea.Cmd {
	if msg := m.validate(); msg != "" {
		m.errText = msg
		return nil
	}

	name := strings.TrimSpace(m.inputs[signupFieldName].Value())
	email := strings.TrimSpace(m.inputs[signupFieldEmail].Value())
	password := m.inputs[signupFieldPassword].Value()
	role := signupRoles[m.roleIdx]

	m.errText = ""
	m.busy = true
	m.seq++
	seq := m.seq
	mgr := m.app.Session

	register := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		err := mgr.Signup(ctx, name, email, password, role)
		return signupDoneMsg{seq: seq, err: err}
	}
	return tea.Batch(m.spin.Tick, register)
}

func (m *signupModel) View(width int) string {
	s := m.app.Styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Create account"))
	b.WriteString("\n\n")
	labels := [signupFieldCount]string{"Name", "Email", "Password", "Confirm password"}
	for i, in := range m.inputs {
		b.WriteString(s.FormLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	b.WriteString(s.FormLabel.Render("Role"))
	b.WriteString("  ")
	for i, r := range signupRoles {
		if i == m.roleIdx {
			b.WriteString(s.Badge.Render(r))
		} else {
			b.WriteString(s.Muted.Render(" " + r + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spin.View() + " creating account...")
	case m.errText != "":
		b.WriteString(s.Error.Render(m.errText))
	default:
		b.WriteString(s.Muted.Render("enter to register, esc to go back"))
	}

	card := s.Card.Render(b.String())
	return lipgloss.Place(width, lipgloss.Height(card)+2, lipgloss.Center, lipgloss.Top, card)
}
