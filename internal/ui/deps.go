package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/i18n"
	"github.com/dmehra2102/menudash/internal/infrastructure/config"
	"github.com/dmehra2102/menudash/internal/session"
	"go.uber.org/zap"
)

// Session is the operator session as the screens use it.
type Session interface {
	guard.Validator
	Login(ctx context.Context, a session.Authenticator, username, password string) error
	Logout()
}

// Deps is everything a screen may need. Ctx lives as long as the program.
type Deps struct {
	Ctx      context.Context
	Config   config.DashboardConfig
	Store    domain.PageStore
	Messages *i18n.Localizer
	Logger   *zap.Logger
	Session  Session
	Auth     session.Authenticator
	Events   *Events
	Prompter *Prompter
	Styles   *Styles
}

// screen is one routed view of the app.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	// Leave is called when navigating away. permanent is false when the
	// screen will be rebuilt shortly and should resume where it was.
	Leave(permanent bool)
}

func navigate(route guard.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: route} }
}
