package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Events forwards messages from background goroutines into the program.
type Events struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

func NewEvents(size int) *Events {
	return &Events{
		ch:   make(chan tea.Msg, size),
		done: make(chan struct{}),
	}
}

// Notify queues msg without blocking; it is dropped when the queue is full.
// Only use it for messages that are safe to coalesce.
func (e *Events) Notify(msg tea.Msg) {
	select {
	case e.ch <- msg:
	case <-e.done:
	default:
	}
}

// Send queues msg, waiting for room until ctx ends or the events are closed.
func (e *Events) Send(ctx context.Context, msg tea.Msg) error {
	select {
	case e.ch <- msg:
		return nil
	case <-e.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait returns a command yielding the next queued message.
func (e *Events) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-e.ch:
			return msg
		case <-e.done:
			return nil
		}
	}
}

func (e *Events) Close() {
	e.once.Do(func() { close(e.done) })
}
