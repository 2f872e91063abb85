package guard

import (
	"go.uber.org/zap"
)

// Route names a dashboard screen.
type Route string

const (
	RouteLogin Route = "login"
	RouteMenu  Route = "menu"
)

// ListRoute is the listing screen of a resource.
func ListRoute(resource string) Route {
	return Route("list:" + resource)
}

// FormRoute is the create form of a resource.
func FormRoute(resource string) Route {
	return Route("form:" + resource)
}

// EditRoute is the edit form of one item of a resource.
func EditRoute(resource, id string) Route {
	return Route("edit:" + resource + ":" + id)
}

// Validator reports whether a usable session token is present.
type Validator interface {
	Valid() bool
}

// Guard admits navigation to protected screens only with a valid session.
// It never calls the backend; authorization stays with the API.
type Guard struct {
	session Validator
	entry   Route
	public  map[Route]bool
	logger  *zap.Logger
}

func New(session Validator, logger *zap.Logger) *Guard {
	return &Guard{
		session: session,
		entry:   RouteLogin,
		public: map[Route]bool{
			RouteLogin: true,
		},
		logger: logger,
	}
}

// Admit returns the route to show: the requested one, or the entry point
// when the route is protected and there is no valid session.
func (g *Guard) Admit(route Route) Route {
	if g.public[route] {
		return route
	}

	if !g.session.Valid() {
		g.logger.Info("navigation denied, redirecting to sign in",
			zap.String("route", string(route)),
		)
		return g.entry
	}

	return route
}
