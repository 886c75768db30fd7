package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

// authForm is the login/register screen. Tab cycles fields, ctrl+t flips
// between the two modes, enter submits.
type authForm struct {
	app   *App
	mode  authMode
	name  textinput.Model
	email textinput.Model
	pass  textinput.Model
	focus int
}

func newAuthForm(app *App) *authForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 128

	return &authForm{app: app, mode: modeLogin, name: name, email: email, pass: pass}
}

func (f *authForm) fields() []*textinput.Model {
	if f.mode == modeRegister {
		return []*textinput.Model{&f.name, &f.email, &f.pass}
	}
	return []*textinput.Model{&f.email, &f.pass}
}

func (f *authForm) setFocus(idx int) {
	fields := f.fields()
	f.focus = (idx + len(fields)) % len(fields)
	for i, field := range fields {
		if i == f.focus {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

func (f *authForm) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		case "ctrl+t":
			if f.mode == modeLogin {
				f.mode = modeRegister
			} else {
				f.mode = modeLogin
			}
			f.setFocus(0)
			return nil
		case "enter":
			return f.submit()
		case "q":
			// plain text input, let it fall through
		case "esc":
			return tea.Quit
		}
	}

	var cmds []tea.Cmd
	for _, field := range f.fields() {
		var cmd tea.Cmd
		*field, cmd = field.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *authForm) submit() tea.Cmd {
	email := strings.TrimSpace(f.email.Value())
	pass := f.pass.Value()

	f.app.auth.status = statusLoading
	if f.mode == modeRegister {
		return registerCmd(f.app.api, strings.TrimSpace(f.name.Value()), email, pass)
	}
	return loginCmd(f.app.api, email, pass)
}

func (f *authForm) view() string {
	var b strings.Builder

	if f.mode == modeRegister {
		b.WriteString(titleStyle.Render("taskboard / register"))
		b.WriteString("\n\n")
		b.WriteString(f.name.View())
		b.WriteString("\n")
	} else {
		b.WriteString(titleStyle.Render("taskboard / login"))
		b.WriteString("\n\n")
	}
	b.WriteString(f.email.View())
	b.WriteString("\n")
	b.WriteString(f.pass.View())
	b.WriteString("\n\n")

	if f.app.auth.status == statusLoading {
		b.WriteString(dimStyle.Render("Signing in..."))
		b.WriteString("\n")
	}
	if f.app.auth.status == statusFailed && f.app.auth.message != "" {
		b.WriteString(errorStyle.Render(f.app.auth.message))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter submit • tab next field • ctrl+t login/register • esc quit"))
	return b.String()
}
