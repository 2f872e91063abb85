// Package ui is the terminal front end: sign in, the resource menu, and a
// listing with create and edit forms per managed resource.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/listing"
	"go.uber.org/zap"
)

const alertTTL = 4 * time.Second

// App is the root model. It routes between screens through the guard, so a
// protected screen is never built without a session.
type App struct {
	deps      *Deps
	guard     *guard.Guard
	bindings  map[domain.ResourceKind]Binding
	resources []domain.Resource

	route   guard.Route
	current screen
	confirm *confirmMsg
	alert   *alertMsg
	alertID int
}

func New(d Deps, g *guard.Guard, bindings ...Binding) *App {
	if d.Styles == nil {
		d.Styles = NewStyles()
	}
	if d.Prompter == nil {
		d.Prompter = NewPrompter(d.Events)
	}

	a := &App{
		deps:     &d,
		guard:    g,
		bindings: make(map[domain.ResourceKind]Binding, len(bindings)),
	}
	for _, b := range bindings {
		r := b.Resource()
		a.bindings[r.Kind] = b
		a.resources = append(a.resources, r)
	}
	return a
}

// Route is the screen currently shown.
func (a *App) Route() guard.Route {
	return a.route
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.deps.Events.Wait(), a.open(guard.RouteMenu))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
		if a.confirm != nil {
			a.answer(msg)
			return a, nil
		}

	case navigateMsg:
		return a, a.open(msg.route)

	case confirmMsg:
		a.confirm = &msg
		return a, a.deps.Events.Wait()

	case alertMsg:
		a.alertID++
		a.alert = &msg
		id := a.alertID
		return a, tea.Batch(
			a.deps.Events.Wait(),
			tea.Tick(alertTTL, func(time.Time) tea.Msg { return clearAlertMsg{id: id} }),
		)

	case clearAlertMsg:
		if msg.id == a.alertID {
			a.alert = nil
		}
		return a, nil

	case panicMsg:
		a.deps.Prompter.Alert(listing.AlertError, a.deps.Messages.T(i18n.KeyErrUnknown))
		return a, nil

	case changedMsg:
		cmd := a.forward(msg)
		return a, tea.Batch(cmd, a.deps.Events.Wait())

	case nil:
		return a, nil
	}

	return a, a.forward(msg)
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	if a.current == nil {
		return nil
	}
	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return cmd
}

func (a *App) answer(msg tea.KeyMsg) {
	var ok bool
	switch {
	case key.Matches(msg, keys.Yes):
		ok = true
	case key.Matches(msg, keys.No):
	default:
		return
	}
	a.confirm.reply <- ok
	a.confirm = nil
}

// open navigates to route, or to where the guard sends the operator instead.
func (a *App) open(route guard.Route) tea.Cmd {
	admitted := a.guard.Admit(route)

	if a.current != nil {
		a.current.Leave(!resumes(a.route, admitted))
	}

	a.current, a.route = a.build(admitted)
	a.deps.Logger.Debug("navigated", zap.String("route", string(a.route)))
	return a.current.Init()
}

// resumes reports whether leaving from for to keeps the screen's place, as
// when a listing opens its own create or edit form.
func resumes(from, to guard.Route) bool {
	kind, ok := strings.CutPrefix(string(from), "list:")
	if !ok {
		return false
	}
	return to == guard.FormRoute(kind) || strings.HasPrefix(string(to), "edit:"+kind+":")
}

// build constructs the screen for route. Unknown routes fall back to the menu.
func (a *App) build(route guard.Route) (screen, guard.Route) {
	r := string(route)
	switch {
	case route == guard.RouteLogin:
		return newLoginScreen(a.deps), route
	case strings.HasPrefix(r, "list:"):
		if b, ok := a.bindings[domain.ResourceKind(strings.TrimPrefix(r, "list:"))]; ok {
			return b.openList(a.deps), route
		}
	case strings.HasPrefix(r, "form:"):
		if b, ok := a.bindings[domain.ResourceKind(strings.TrimPrefix(r, "form:"))]; ok {
			return b.openForm(a.deps), route
		}
	case strings.HasPrefix(r, "edit:"):
		kind, id, ok := strings.Cut(strings.TrimPrefix(r, "edit:"), ":")
		if b, found := a.bindings[domain.ResourceKind(kind)]; ok && found && id != "" {
			return b.openEdit(a.deps, id), route
		}
	}
	return newMenuScreen(a.deps, a.resources), guard.RouteMenu
}

// Close keeps the current screen's place for the next run and stops event
// delivery.
func (a *App) Close() {
	if a.current != nil {
		a.current.Leave(false)
	}
	a.deps.Events.Close()
}

func (a *App) View() string {
	if a.current == nil {
		return ""
	}
	st := a.deps.Styles

	var b strings.Builder
	b.WriteString(a.current.View())

	if a.confirm != nil {
		box := a.confirm.prompt + "\n" + st.Dim.Render(a.deps.Messages.T(i18n.KeyConfirmHint))
		b.WriteString("\n" + st.ConfirmBox.Render(box))
	}
	if a.alert != nil {
		style := st.Info
		switch a.alert.kind {
		case listing.AlertSuccess:
			style = st.Success
		case listing.AlertError:
			style = st.Error
		}
		b.WriteString("\n" + style.Render(a.alert.message))
	}
	return b.String() + "\n"
}
