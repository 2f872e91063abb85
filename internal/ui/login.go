package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
)

type loginScreen struct {
	deps     *Deps
	username textinput.Model
	password textinput.Model
	spinner  spinner.Model
	busy     bool
	err      string
}

func newLoginScreen(d *Deps) *loginScreen {
	user := textinput.New()
	user.Placeholder = d.Messages.T(i18n.KeyUsername)
	user.CharLimit = 120

	pass := textinput.New()
	pass.Placeholder = d.Messages.T(i18n.KeyPassword)
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &loginScreen{deps: d, username: user, password: pass, spinner: sp}
}

func (l *loginScreen) Init() tea.Cmd {
	return tea.Batch(l.username.Focus(), l.spinner.Tick)
}

func (l *loginScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case loginResultMsg:
		l.busy = false
		if msg.err != nil {
			l.err = l.deps.Messages.Error(msg.err)
			l.password.SetValue("")
			return l, nil
		}
		return l, navigate(guard.RouteMenu)

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch {
		case key.Matches(msg, keys.Open):
			if l.username.Focused() {
				l.username.Blur()
				return l, l.password.Focus()
			}
			return l, l.submit()
		case key.Matches(msg, keys.Tab, keys.BackTab):
			if l.username.Focused() {
				l.username.Blur()
				return l, l.password.Focus()
			}
			l.password.Blur()
			return l, l.username.Focus()
		}

		var cmd tea.Cmd
		if l.username.Focused() {
			l.username, cmd = l.username.Update(msg)
		} else {
			l.password, cmd = l.password.Update(msg)
		}
		return l, cmd
	}
	return l, nil
}

func (l *loginScreen) submit() tea.Cmd {
	username, password := strings.TrimSpace(l.username.Value()), l.password.Value()
	l.busy = true
	l.err = ""
	return safe(l.deps.Logger, "login", func() tea.Msg {
		return loginResultMsg{err: l.deps.Session.Login(l.deps.Ctx, l.deps.Auth, username, password)}
	})
}

func (l *loginScreen) Leave(bool) {}

func (l *loginScreen) View() string {
	st := l.deps.Styles
	msgs := l.deps.Messages

	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T(i18n.KeyAppTitle)+" · "+msgs.T(i18n.KeyLoginTitle)) + "\n")
	b.WriteString(l.username.View() + "\n")
	b.WriteString(l.password.View() + "\n")

	switch {
	case l.busy:
		b.WriteString("\n" + l.spinner.View() + " " + msgs.T(i18n.KeySigningIn))
	case l.err != "":
		b.WriteString("\n" + st.Error.Render(l.err))
	}
	return b.String()
}
