package listing

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a search query is applied.
const DefaultDebounce = time.Second

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d. time.AfterFunc satisfies it once adapted.
type AfterFunc func(d time.Duration, fn func()) Timer

func realAfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type DebounceOption func(*Debouncer)

// WithAfterFunc replaces the clock, for tests.
func WithAfterFunc(fn AfterFunc) DebounceOption {
	return func(d *Debouncer) { d.afterFunc = fn }
}

// Debouncer runs the last triggered task once the window has passed without
// another trigger. A fired task whose generation was superseded never runs.
type Debouncer struct {
	window    time.Duration
	afterFunc AfterFunc

	mu     sync.Mutex
	timer  Timer
	gen    uint64
	closed bool
}

func NewDebouncer(window time.Duration, opts ...DebounceOption) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	d := &Debouncer{window: window, afterFunc: realAfterFunc}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger cancels any pending task and schedules fn. It returns false once
// the debouncer is closed.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return false
	}
	d.stopLocked()

	gen := d.gen
	d.timer = d.afterFunc(d.window, func() {
		d.mu.Lock()
		if d.closed || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	return true
}

// Stop cancels the pending task, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a task is scheduled and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close cancels the pending task and rejects later triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.closed = true
}

func (d *Debouncer) stopLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
