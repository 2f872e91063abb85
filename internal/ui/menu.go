package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
)

type menuScreen struct {
	deps      *Deps
	resources []domain.Resource
	cursor    int
}

func newMenuScreen(d *Deps, resources []domain.Resource) *menuScreen {
	return &menuScreen{deps: d, resources: resources}
}

func (m *menuScreen) Init() tea.Cmd { return nil }

func (m *menuScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, keys.Down):
		if m.cursor < len(m.resources)-1 {
			m.cursor++
		}
	case key.Matches(k, keys.Open):
		if len(m.resources) > 0 {
			return m, navigate(guard.ListRoute(string(m.resources[m.cursor].Kind)))
		}
	case key.Matches(k, keys.Logout):
		m.deps.Session.Logout()
		return m, navigate(guard.RouteLogin)
	case key.Matches(k, keys.Exit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *menuScreen) Leave(bool) {}

func (m *menuScreen) View() string {
	st := m.deps.Styles
	msgs := m.deps.Messages

	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T(i18n.KeyAppTitle)) + "\n")
	for i, r := range m.resources {
		line := "  " + msgs.T("resource."+string(r.Kind))
		if i == m.cursor {
			line = st.Selected.Render("> " + msgs.T("resource."+string(r.Kind)))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(st.Hint.Render(msgs.T(i18n.KeyMenuHint)))
	return b.String()
}
