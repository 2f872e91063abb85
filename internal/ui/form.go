package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/listing"
)

type formScreen struct {
	deps   *Deps
	res    domain.Resource
	submit func(ctx context.Context, draft domain.Draft) (string, error)
	load   func(ctx context.Context) (domain.Draft, error)
	title  string
	done   string

	names   []string
	inputs  []textinput.Model
	focus   int
	loading bool
	saving  bool
	err     string
}

func newForm(d *Deps, res domain.Resource, submit func(ctx context.Context, draft domain.Draft) (string, error)) *formScreen {
	f := &formScreen{deps: d, res: res, submit: submit}
	for _, field := range res.Schema.Fields {
		f.add(field.Name, field.MaxLen)
	}
	return f
}

// newFormScreen creates a new item.
func newFormScreen(d *Deps, res domain.Resource, submit func(ctx context.Context, draft domain.Draft) (string, error)) *formScreen {
	f := newForm(d, res, submit)
	f.title, f.done = i18n.KeyNewItem, i18n.KeyCreated
	if res.Schema.ImageField != "" {
		f.add(res.Schema.ImageField, 4096)
	}
	return f
}

// newEditScreen edits an existing item, prefilled by load. Images are only
// set on create.
func newEditScreen(d *Deps, res domain.Resource, load func(ctx context.Context) (domain.Draft, error), submit func(ctx context.Context, draft domain.Draft) (string, error)) *formScreen {
	f := newForm(d, res, submit)
	f.title, f.done = i18n.KeyEditItem, i18n.KeyUpdated
	f.load = load
	return f
}

func (f *formScreen) add(name string, limit int) {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	f.names = append(f.names, name)
	f.inputs = append(f.inputs, in)
}

func (f *formScreen) Init() tea.Cmd {
	var cmds []tea.Cmd
	if len(f.inputs) > 0 {
		cmds = append(cmds, f.inputs[0].Focus())
	}
	if f.load != nil {
		f.loading = true
		cmds = append(cmds, safe(f.deps.Logger, "load", func() tea.Msg {
			draft, err := f.load(f.deps.Ctx)
			return loadedMsg{draft: draft, err: err}
		}))
	}
	return tea.Batch(cmds...)
}

func (f *formScreen) draft() domain.Draft {
	d := make(domain.Draft, len(f.inputs))
	for i, in := range f.inputs {
		if v := strings.TrimSpace(in.Value()); v != "" {
			d[f.names[i]] = v
		}
	}
	return d
}

func (f *formScreen) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *formScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		f.loading = false
		if msg.err != nil {
			f.deps.Prompter.Alert(listing.AlertError, f.deps.Messages.Error(msg.err))
			return f, navigate(guard.ListRoute(string(f.res.Kind)))
		}
		for i, name := range f.names {
			f.inputs[i].SetValue(msg.draft[name])
		}
		return f, nil

	case savedMsg:
		f.saving = false
		if msg.err != nil {
			f.err = f.deps.Messages.Error(msg.err)
			return f, nil
		}
		f.deps.Prompter.Alert(listing.AlertSuccess, f.deps.Messages.T(f.done, msg.label))
		return f, navigate(guard.ListRoute(string(f.res.Kind)))

	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) && !f.saving {
			return f, navigate(guard.ListRoute(string(f.res.Kind)))
		}
		if f.saving || f.loading {
			return f, nil
		}
		switch {
		case key.Matches(msg, keys.Open):
			if f.focus < len(f.inputs)-1 {
				return f, f.setFocus(f.focus + 1)
			}
			return f, f.save()
		case key.Matches(msg, keys.Tab):
			return f, f.setFocus(f.focus + 1)
		case key.Matches(msg, keys.BackTab):
			return f, f.setFocus(f.focus - 1)
		}

		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

// save validates locally first so an invalid draft never reaches the backend.
func (f *formScreen) save() tea.Cmd {
	draft := f.draft()
	if _, _, err := f.res.Schema.Build(draft); err != nil {
		f.err = f.deps.Messages.Error(err)
		return nil
	}

	f.saving = true
	f.err = ""
	return safe(f.deps.Logger, "save", func() tea.Msg {
		label, err := f.submit(f.deps.Ctx, draft)
		return savedMsg{label: label, err: err}
	})
}

func (f *formScreen) Leave(bool) {}

func (f *formScreen) View() string {
	st := f.deps.Styles
	msgs := f.deps.Messages

	var b strings.Builder
	title := msgs.T(f.title, msgs.T("resource."+string(f.res.Kind)))
	b.WriteString(st.Title.Render(title) + "\n")

	for i, in := range f.inputs {
		label := msgs.T("field." + f.names[i])
		if i == f.focus {
			label = st.FocusedText.Render(label)
		}
		b.WriteString(label + ": " + in.View() + "\n")
	}

	switch {
	case f.loading:
		b.WriteString("\n" + st.Dim.Render(msgs.T(i18n.KeyLoading)))
	case f.saving:
		b.WriteString("\n" + st.Dim.Render(msgs.T(i18n.KeySaving)))
	case f.err != "":
		b.WriteString("\n" + st.Error.Render(f.err))
	}
	b.WriteString("\n" + st.Hint.Render(msgs.T(i18n.KeyFormHint)))
	return b.String()
}
