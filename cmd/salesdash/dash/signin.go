package dash

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdash/internal/logging"
)

// sessionChangedMsg tells the root model a login or signup succeeded and
// the dashboard should take over.
type sessionChangedMsg struct{}

// signinDoneMsg carries the result of a login attempt.
type signinDoneMsg struct {
	seq int
	err error
}

const (
	signinFieldEmail = iota
	signinFieldPassword
	signinFieldCount
)

type signinModel struct {
	app *App

	inputs  [signinFieldCount]textinput.Model
	focus   int
	spin    spinner.Model
	busy    bool
	seq     int
	errText string
}

func newSigninModel(app *App) *signinModel {
	m := &signinModel{app: app}

	email := textinput.New()
	email.Placeholder = "you@company.com"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.inputs[signinFieldEmail] = email
	m.inputs[signinFieldPassword] = password

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = app.Styles.Spinner
	return m
}

func (m *signinModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *signinModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case signinDoneMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.busy = false
		if msg.err != nil {
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
		case "tab", "down":
			m.setFocus((m.focus + 1) % signinFieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + signinFieldCount - 1) % signinFieldCount)
			return nil
		case "enter":
			return m.submit()
		case "ctrl+s":
			return func() tea.Msg { return gotoSignupMsg{} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *signinModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *signinModel) submit() tea.Cmd {
	email := strings.TrimSpace(m.inputs[signinFieldEmail].Value())
	password := m.inputs[signinFieldPassword].Value()

	if email == "" || password == "" {
		m.errText = "email and password are required"
		return nil
	}
	if !strings.Contains(email, "@") {
		m.errText = "enter a valid email address"
		return nil
	}

	m.errText = ""
	m.busy = true
	m.seq++
	seq := m.seq
	mgr := m.app.Session

	login := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		err := mgr.Login(ctx, email, password)
		if err != nil {
			logging.SessionWarn("login rejected for %s", email)
		}
		return signinDoneMsg{seq: seq, err: err}
	}
	return tea.Batch(m.spin.Tick, login)
}

func (m *signinModel) View(width int) string {
	s := m.app.Styles

	var b strings.Builder
	b.WriteString(s.Title.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString(s.FormLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.inputs[signinFieldEmail].View())
	b.WriteString("\n\n")
	b.WriteString(s.FormLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.inputs[signinFieldPassword].View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spin.View() + " signing in...")
	case m.errText != "":
		b.WriteString(s.Error.Render(m.errText))
	default:
		b.WriteString(s.Muted.Render("enter to sign in, ctrl+s to create an account"))
	}

	card := s.Card.Render(b.String())
	return lipgloss.Place(width, lipgloss.Height(card)+2, lipgloss.Center, lipgloss.Top, card)
}
