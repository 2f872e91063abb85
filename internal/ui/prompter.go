package ui

import (
	"context"

	"github.com/dmehra2102/menudash/internal/listing"
)

// Prompter routes confirmation questions and alerts from background
// operations to the app's modal and status line.
type Prompter struct {
	events *Events
}

func NewPrompter(events *Events) *Prompter {
	return &Prompter{events: events}
}

// Confirm blocks until the operator answers or ctx ends.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	if err := p.events.Send(ctx, confirmMsg{prompt: prompt, reply: reply}); err != nil {
		return false, err
	}

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *Prompter) Alert(kind listing.AlertKind, message string) {
	p.events.Notify(alertMsg{kind: kind, message: message})
}
