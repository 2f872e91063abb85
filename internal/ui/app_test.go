package ui

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/infrastructure/config"
	"github.com/dmehra2102/menudash/internal/infrastructure/memstore"
	"github.com/dmehra2102/menudash/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSession struct {
	mu    sync.Mutex
	valid bool
}

func (f *fakeSession) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

func (f *fakeSession) Login(_ context.Context, _ session.Authenticator, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrEmptyCredentials
	}
	if password != "secret" {
		return domain.ErrAuth
	}
	f.mu.Lock()
	f.valid = true
	f.mu.Unlock()
	return nil
}

func (f *fakeSession) Logout() {
	f.mu.Lock()
	f.valid = false
	f.mu.Unlock()
}

type fakeService struct {
	mu      sync.Mutex
	items   []domain.Category
	lists   int
	deleted []string
	created []domain.Draft
	updated map[string]domain.Draft
}

func (f *fakeService) Resource() domain.Resource {
	r, _ := domain.ResourceByKind(domain.ResourceCategories)
	return r
}

func (f *fakeService) List(_ context.Context, q domain.ListQuery) (*domain.Page[domain.Category], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	items := append([]domain.Category(nil), f.items...)
	return &domain.Page[domain.Category]{Items: items, TotalElements: int64(len(items))}, nil
}

func (f *fakeService) Search(ctx context.Context, q domain.ListQuery) (*domain.Page[domain.Category], error) {
	return f.List(ctx, q)
}

func (f *fakeService) ByCategory(ctx context.Context, q domain.ListQuery) (*domain.Page[domain.Category], error) {
	return f.List(ctx, q)
}

func (f *fakeService) Create(_ context.Context, d domain.Draft) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, d)
	c := domain.Category{ID: int64(len(f.items) + 1), Name: d["name"]}
	f.items = append(f.items, c)
	return &c, nil
}

func (f *fakeService) Get(_ context.Context, id string) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if strconv.FormatInt(c.ID, 10) == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeService) Update(_ context.Context, id string, d domain.Draft) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.items {
		if strconv.FormatInt(c.ID, 10) == id {
			if f.updated == nil {
				f.updated = make(map[string]domain.Draft)
			}
			f.updated[id] = d
			f.items[i].Name = d["name"]
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.items {
		if strconv.FormatInt(c.ID, 10) == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeService) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

func newTestApp(t *testing.T, signedIn bool, svc *fakeService) *App {
	t.Helper()
	sess := &fakeSession{valid: signedIn}
	d := Deps{
		Ctx:      context.Background(),
		Config:   config.DashboardConfig{PageSize: 8, SearchDebounce: time.Second},
		Store:    memstore.New(),
		Messages: i18n.New("en"),
		Logger:   zap.NewNop(),
		Session:  sess,
		Events:   NewEvents(64),
	}
	a := New(d, guard.New(sess, zap.NewNop()), Bind[domain.Category](svc))
	t.Cleanup(a.Close)
	return a
}

// exec runs cmd and any batch it expands to, returning the produced messages.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, exec(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(runes(string(r)))
	}
}

func find[M any](msgs []tea.Msg) (M, bool) {
	for _, m := range msgs {
		if v, ok := m.(M); ok {
			return v, true
		}
	}
	var zero M
	return zero, false
}

func categoriesRoute() guard.Route {
	return guard.ListRoute(string(domain.ResourceCategories))
}

func TestApp_UnauthenticatedNavigationRedirectsWithoutFetch(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}}}
	a := newTestApp(t, false, svc)

	a.open(guard.RouteMenu)
	assert.Equal(t, guard.RouteLogin, a.Route())

	_, cmd := a.Update(navigateMsg{route: categoriesRoute()})
	exec(cmd)

	assert.Equal(t, guard.RouteLogin, a.Route())
	assert.Zero(t, svc.listCount())
	assert.Contains(t, a.View(), "Sign in")
}

func TestApp_ListingFetchesOnOpen(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}, {ID: 2, Name: "Desserts"}}}
	a := newTestApp(t, true, svc)

	_, cmd := a.Update(navigateMsg{route: categoriesRoute()})
	require.Equal(t, categoriesRoute(), a.Route())
	exec(cmd)

	assert.Equal(t, 1, svc.listCount())
	view := a.View()
	assert.Contains(t, view, "Categories")
	assert.Contains(t, view, "Drinks")
	assert.Contains(t, view, "Page 1 of 1")
}

func TestApp_LoginThenMenu(t *testing.T) {
	a := newTestApp(t, false, &fakeService{})
	a.open(guard.RouteMenu)
	require.Equal(t, guard.RouteLogin, a.Route())

	typeText(a, "admin")
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(a, "wrong")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})

	for _, msg := range exec(cmd) {
		a.Update(msg)
	}
	assert.Equal(t, guard.RouteLogin, a.Route())
	assert.Contains(t, a.View(), "Access denied or session expired.")

	typeText(a, "secret")
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := find[loginResultMsg](exec(cmd))
	require.True(t, ok)
	require.NoError(t, result.err)

	_, cmd = a.Update(result)
	for _, msg := range exec(cmd) {
		a.Update(msg)
	}
	assert.Equal(t, guard.RouteMenu, a.Route())
	assert.Contains(t, a.View(), "Categories")
}

func TestApp_DeleteAsksForConfirmation(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}, {ID: 2, Name: "Desserts"}}}
	a := newTestApp(t, true, svc)

	_, cmd := a.Update(navigateMsg{route: categoriesRoute()})
	exec(cmd)

	_, cmd = a.Update(runes("d"))
	require.NotNil(t, cmd)
	done := make(chan []tea.Msg, 1)
	go func() { done <- exec(cmd) }()

	var confirm confirmMsg
	for {
		msg := a.deps.Events.Wait()()
		if c, ok := msg.(confirmMsg); ok {
			confirm = c
			break
		}
	}
	a.Update(confirm)
	assert.Contains(t, a.View(), "Delete Drinks?")

	a.Update(runes("y"))
	msgs := <-done
	deleted, ok := find[deletedMsg](msgs)
	require.True(t, ok)
	require.NoError(t, deleted.err)

	assert.Equal(t, []string{"1"}, svc.deleted)
	assert.Equal(t, 2, svc.listCount())
	assert.NotContains(t, a.View(), "Delete Drinks?")
}

func TestApp_DeclinedDeleteKeepsItem(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}}}
	a := newTestApp(t, true, svc)

	_, cmd := a.Update(navigateMsg{route: categoriesRoute()})
	exec(cmd)

	_, cmd = a.Update(runes("d"))
	done := make(chan []tea.Msg, 1)
	go func() { done <- exec(cmd) }()

	for {
		if c, ok := a.deps.Events.Wait()().(confirmMsg); ok {
			a.Update(c)
			break
		}
	}
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	deleted, ok := find[deletedMsg](<-done)
	require.True(t, ok)
	assert.ErrorIs(t, deleted.err, domain.ErrCancelled)
	assert.Empty(t, svc.deleted)
	assert.Equal(t, categoriesRoute(), a.Route())
}

func TestApp_CreateFormValidatesBeforeSaving(t *testing.T) {
	svc := &fakeService{}
	a := newTestApp(t, true, svc)

	a.Update(navigateMsg{route: categoriesRoute()})
	_, cmd := a.Update(runes("n"))
	for _, msg := range exec(cmd) {
		a.Update(msg)
	}
	require.Equal(t, guard.FormRoute(string(domain.ResourceCategories)), a.Route())

	// name is empty; enter moves to the image field, enter again submits
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, a.View(), "Name is required.")
	assert.Empty(t, svc.created)

	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	typeText(a, "Drinks")
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	saved, ok := find[savedMsg](exec(cmd))
	require.True(t, ok)
	require.NoError(t, saved.err)

	_, cmd = a.Update(saved)
	for _, msg := range exec(cmd) {
		a.Update(msg)
	}
	assert.Equal(t, categoriesRoute(), a.Route())
	require.Len(t, svc.created, 1)
	assert.Equal(t, "Drinks", svc.created[0]["name"])
}

func TestApp_EditPrefillsAndUpdates(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}, {ID: 2, Name: "Desserts"}}}
	a := newTestApp(t, true, svc)

	_, cmd := a.Update(navigateMsg{route: categoriesRoute()})
	exec(cmd)
	a.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd = a.Update(runes("e"))
	nav, ok := find[navigateMsg](exec(cmd))
	require.True(t, ok)
	_, cmd = a.Update(nav)
	require.Equal(t, guard.EditRoute(string(domain.ResourceCategories), "2"), a.Route())
	assert.Contains(t, a.View(), "Loading...")

	loaded, ok := find[loadedMsg](exec(cmd))
	require.True(t, ok)
	require.NoError(t, loaded.err)
	a.Update(loaded)

	form, ok := a.current.(*formScreen)
	require.True(t, ok)
	require.Len(t, form.inputs, 1)
	assert.Equal(t, "Desserts", form.inputs[0].Value())
	assert.Contains(t, a.View(), "Edit Categories")

	typeText(a, "2")
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	saved, ok := find[savedMsg](exec(cmd))
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, "Desserts2", saved.label)

	_, cmd = a.Update(saved)
	nav, ok = find[navigateMsg](exec(cmd))
	require.True(t, ok)
	_, cmd = a.Update(nav)
	exec(cmd)

	assert.Equal(t, categoriesRoute(), a.Route())
	assert.Equal(t, domain.Draft{"name": "Desserts2"}, svc.updated["2"])
	assert.Empty(t, svc.created)
	assert.Equal(t, 2, svc.listCount())
	assert.Contains(t, a.View(), "Desserts2")
}

func TestApp_EditMissingItemReturnsToListing(t *testing.T) {
	svc := &fakeService{items: []domain.Category{{ID: 1, Name: "Drinks"}}}
	a := newTestApp(t, true, svc)

	_, cmd := a.Update(navigateMsg{route: guard.EditRoute(string(domain.ResourceCategories), "9")})
	loaded, ok := find[loadedMsg](exec(cmd))
	require.True(t, ok)
	require.ErrorIs(t, loaded.err, domain.ErrNotFound)

	_, cmd = a.Update(loaded)
	nav, ok := find[navigateMsg](exec(cmd))
	require.True(t, ok)
	a.Update(nav)

	assert.Equal(t, categoriesRoute(), a.Route())
	assert.Empty(t, svc.updated)
}

func TestResumes(t *testing.T) {
	assert.True(t, resumes(guard.ListRoute("reels"), guard.FormRoute("reels")))
	assert.True(t, resumes(guard.ListRoute("reels"), guard.EditRoute("reels", "4")))
	assert.False(t, resumes(guard.ListRoute("reels"), guard.EditRoute("games", "4")))
	assert.False(t, resumes(guard.ListRoute("reels"), guard.RouteMenu))
	assert.False(t, resumes(guard.ListRoute("reels"), guard.FormRoute("games")))
	assert.False(t, resumes(guard.RouteMenu, guard.FormRoute("reels")))
}
