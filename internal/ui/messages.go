package ui

import (
	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/guard"
	"github.com/dmehra2102/menudash/internal/listing"
)

// changedMsg signals that a controller's state moved
type changedMsg struct{}

// navigateMsg asks the app to switch screens
type navigateMsg struct {
	route guard.Route
}

// alertMsg carries a toast for the status line
type alertMsg struct {
	kind    listing.AlertKind
	message string
}

// clearAlertMsg expires the toast with the matching id
type clearAlertMsg struct {
	id int
}

// confirmMsg asks the operator a yes/no question; the answer goes to reply
type confirmMsg struct {
	prompt string
	reply  chan<- bool
}

// loginResultMsg is the outcome of a sign in attempt
type loginResultMsg struct {
	err error
}

// loadedMsg carries the current values of an item opened for editing
type loadedMsg struct {
	draft domain.Draft
	err   error
}

// savedMsg is the outcome of a form submission
type savedMsg struct {
	label string
	err   error
}

// opDoneMsg ends a background listing operation
type opDoneMsg struct {
	err error
}

// panicMsg reports a command that panicked
type panicMsg struct {
	err error
}

// deletedMsg ends a delete flow
type deletedMsg struct {
	err error
}
