// Package login provides the sign in and sign up form of the TUI.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/academia/pkg/theme"
)

// SubmitMsg is emitted when the user confirms the form.
type SubmitMsg struct {
	Email    string
	Password string
	Signup   bool
}

// CancelMsg is emitted when the user dismisses the form.
type CancelMsg struct{}

const (
	fieldEmail = iota
	fieldPassword
)

// Model is a two field credential form.
type Model struct {
	inputs [2]textinput.Model
	focus  int
	signup bool
	err    string

	styles theme.ModalStyles
	width  int
}

// New returns a form in sign in mode with the email field focused.
func New(styles theme.ModalStyles) *Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Prompt = "Email    "
	email.VirtualCursor = true

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Prompt = "Password "
	password.EchoMode = textinput.EchoPassword
	password.VirtualCursor = true

	m := &Model{inputs: [2]textinput.Model{email, password}, styles: styles, width: 48}
	m.inputs[fieldEmail].Focus()
	return m
}

// SetStyles updates the frame after a theme change.
func (m *Model) SetStyles(styles theme.ModalStyles) { m.styles = styles }

// SetSize bounds the form width.
func (m *Model) SetSize(width, _ int) {
	m.width = min(max(width-4, 32), 64)
}

// SetSignup switches between sign in and sign up.
func (m *Model) SetSignup(signup bool) { m.signup = signup }

// Signup reports whether the form creates an account.
func (m *Model) Signup() bool { return m.signup }

// SetError shows err under the fields. An empty string clears it.
func (m *Model) SetError(err string) { m.err = err }

// Reset clears both fields and the error and focuses the email field.
func (m *Model) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = fieldEmail
	m.err = ""
	m.inputs[fieldEmail].Focus()
}

// Init starts nothing; the fields do not blink.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles focus movement, submit and cancel, and forwards the rest
// to the focused field.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		case "ctrl+s":
			m.signup = !m.signup
			return m, nil
		case "enter":
			if m.focus == fieldEmail {
				return m, m.setFocus(fieldPassword)
			}
			submit := SubmitMsg{
				Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
				Password: m.inputs[fieldPassword].Value(),
				Signup:   m.signup,
			}
			return m, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// View renders the framed form.
func (m *Model) View() (string, *tea.Cursor) {
	title := "Sign in"
	toggle := "ctrl+s: create an account instead"
	if m.signup {
		title = "Create an account"
		toggle = "ctrl+s: sign in instead"
	}
	lines := []string{
		m.styles.Title.Render(title),
		"",
		m.inputs[fieldEmail].View(),
		m.inputs[fieldPassword].View(),
	}
	if m.err != "" {
		lines = append(lines, "", m.styles.Body.Render(m.err))
	}
	lines = append(lines, "", m.styles.Body.Render("enter: submit  tab: next field  esc: cancel"), m.styles.Body.Render(toggle))
	return m.styles.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), nil
}
