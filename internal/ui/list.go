package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/listing"
	"go.uber.org/zap"
)

type listMode int

const (
	modeBrowse listMode = iota
	modeSearch
	modeCategory
)

const maxColumnWidth = 32

type listScreen[T domain.Entity] struct {
	deps   *Deps
	res    domain.Resource
	ctrl   *listing.Controller[T]
	search *listing.Search[T]
	recon  *listing.Reconciler[T]

	mode     listMode
	input    textinput.Model
	spinner  spinner.Model
	cursor   int
	deleting bool
}

func newListScreen[T domain.Entity](d *Deps, svc Service[T]) *listScreen[T] {
	res := svc.Resource()
	ctrl := listing.New[T](d.Ctx, svc, d.Store, res.PageKey(), d.Config.PageSize,
		listing.WithLabel(string(res.Kind)),
		listing.WithLogger(d.Logger),
		listing.WithMessages(d.Messages),
		listing.WithNotify(func() { d.Events.Notify(changedMsg{}) }),
	)

	input := textinput.New()
	input.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &listScreen[T]{
		deps:    d,
		res:     res,
		ctrl:    ctrl,
		search:  listing.NewSearch(d.Ctx, ctrl, d.Config.SearchDebounce, d.Config.SearchRefreshOnIdle),
		recon:   listing.NewReconciler(ctrl, svc, d.Prompter, d.Prompter),
		input:   input,
		spinner: sp,
	}
}

func (s *listScreen[T]) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.run("refresh", s.ctrl.Refresh))
}

func (s *listScreen[T]) run(name string, fn func(ctx context.Context) error) tea.Cmd {
	return safe(s.deps.Logger, name, func() tea.Msg {
		return opDoneMsg{err: fn(s.deps.Ctx)}
	})
}

func (s *listScreen[T]) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case changedMsg:
		s.clampCursor()
		return s, nil

	case deletedMsg:
		s.deleting = false
		s.clampCursor()
		return s, nil

	case tea.KeyMsg:
		switch s.mode {
		case modeSearch:
			return s, s.updateSearch(msg)
		case modeCategory:
			return s, s.updateCategory(msg)
		default:
			return s.updateBrowse(msg)
		}
	}
	return s, nil
}

func (s *listScreen[T]) updateBrowse(msg tea.KeyMsg) (screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()

	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.cursor < len(snap.Items)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Prev):
		s.cursor = 0
		return s, s.run("prev-page", s.search.PrevPage)
	case key.Matches(msg, keys.Next):
		s.cursor = 0
		return s, s.run("next-page", s.search.NextPage)
	case key.Matches(msg, keys.Refresh):
		return s, s.run("refresh", s.ctrl.Refresh)
	case key.Matches(msg, keys.Search):
		s.mode = modeSearch
		s.input.Placeholder = s.deps.Messages.T(i18n.KeySearch)
		s.input.SetValue(s.search.Query())
		return s, s.input.Focus()
	case key.Matches(msg, keys.Filter) && s.res.CategoryFilter:
		s.mode = modeCategory
		s.input.Placeholder = s.deps.Messages.T(i18n.KeyCategory)
		s.input.SetValue("")
		if id := snap.Query.CategoryID; id != nil {
			s.input.SetValue(*id)
		}
		return s, s.input.Focus()
	case key.Matches(msg, keys.New):
		return s, navigate(guard.FormRoute(string(s.res.Kind)))
	case key.Matches(msg, keys.Edit):
		if s.cursor >= len(snap.Items) {
			return s, nil
		}
		return s, navigate(guard.EditRoute(string(s.res.Kind), snap.Items[s.cursor].EntityID()))
	case key.Matches(msg, keys.Delete):
		if s.deleting || s.cursor >= len(snap.Items) {
			return s, nil
		}
		item := snap.Items[s.cursor]
		s.deleting = true
		return s, safe(s.deps.Logger, "delete", func() tea.Msg {
			return deletedMsg{err: s.recon.Delete(s.deps.Ctx, item.EntityID(), item.DisplayName())}
		})
	case key.Matches(msg, keys.Back):
		return s, navigate(guard.RouteMenu)
	}
	return s, nil
}

func (s *listScreen[T]) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Open, keys.Back) {
		s.mode = modeBrowse
		s.input.Blur()
		return nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != before {
		s.search.SetQuery(v)
	}
	return cmd
}

func (s *listScreen[T]) updateCategory(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		s.mode = modeBrowse
		s.input.Blur()
		return nil
	case key.Matches(msg, keys.Open):
		s.mode = modeBrowse
		s.input.Blur()
		s.cursor = 0
		id := strings.TrimSpace(s.input.Value())
		return s.run("category", func(ctx context.Context) error {
			if id == "" {
				return s.ctrl.SetCategory(ctx, nil)
			}
			return s.ctrl.SetCategory(ctx, &id)
		})
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *listScreen[T]) clampCursor() {
	n := len(s.ctrl.Snapshot().Items)
	if s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

func (s *listScreen[T]) Leave(permanent bool) {
	s.search.Close()
	if !permanent {
		s.ctrl.Detach()
		return
	}
	if err := s.ctrl.Close(s.deps.Ctx); err != nil {
		s.deps.Logger.Warn("failed to close listing", zap.String("resource", string(s.res.Kind)), zap.Error(err))
	}
}

func (s *listScreen[T]) View() string {
	st := s.deps.Styles
	msgs := s.deps.Messages
	snap := s.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T("resource." + string(s.res.Kind))))
	b.WriteString("\n")

	switch s.mode {
	case modeSearch, modeCategory:
		b.WriteString(st.Input.Render(s.input.Placeholder+": ") + s.input.View() + "\n\n")
	default:
		if q := s.search.Query(); q != "" {
			b.WriteString(st.Dim.Render(msgs.T(i18n.KeySearch)+": "+q) + "\n")
		}
		if id := snap.Query.CategoryID; id != nil {
			b.WriteString(st.Dim.Render(msgs.T(i18n.KeyCategory)+": "+*id) + "\n")
		}
	}

	switch {
	case snap.Status == listing.StatusError:
		b.WriteString(st.Error.Render(snap.Message))
	case snap.Loading() && len(snap.Items) == 0:
		b.WriteString(s.spinner.View() + " " + msgs.T(i18n.KeyLoading))
	case len(snap.Items) == 0:
		b.WriteString(st.Dim.Render(msgs.T(i18n.KeyEmpty)))
	default:
		b.WriteString(s.table(snap.Items))
	}

	status := msgs.T(i18n.KeyPageOf, snap.Query.Page+1, snap.TotalPages)
	if snap.Loading() {
		status += " " + s.spinner.View()
	}
	b.WriteString("\n" + st.StatusLine.Render(status))
	b.WriteString("\n" + st.Hint.Render(msgs.T(i18n.KeyListHint)))
	return b.String()
}

func (s *listScreen[T]) table(items []T) string {
	st := s.deps.Styles
	headers := make([]string, len(s.res.Headers))
	for i, h := range s.res.Headers {
		headers[i] = s.deps.Messages.T("field." + h)
	}

	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = it.Columns()
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = min(max(widths[i], lipgloss.Width(row[i])), maxColumnWidth)
		}
	}

	line := func(cells []string) string {
		out := make([]string, len(widths))
		for i := range widths {
			var c string
			if i < len(cells) {
				c = cells[i]
			}
			out[i] = st.Cell.Width(widths[i] + 2).MaxWidth(widths[i] + 2).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, out...)
	}

	var b strings.Builder
	b.WriteString(st.Header.Render(line(headers)) + "\n")
	for i, row := range rows {
		r := line(row)
		if i == s.cursor {
			r = st.Selected.Render(r)
		}
		b.WriteString(r + "\n")
	}
	return b.String()
}
