package listing

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Search applies name-filter input to a controller once typing settles.
type Search[T any] struct {
	ctx           context.Context
	ctrl          *Controller[T]
	debouncer     *Debouncer
	refreshOnIdle bool

	mu   sync.Mutex
	text string
}

// NewSearch binds a debounced query box to ctrl. Settled queries are fetched
// with ctx, which should live as long as the screen. With refreshOnIdle, an
// empty settled query always refetches the unfiltered page; otherwise only
// when it clears a previously applied filter.
func NewSearch[T any](ctx context.Context, ctrl *Controller[T], window time.Duration, refreshOnIdle bool, opts ...DebounceOption) *Search[T] {
	return &Search[T]{
		ctx:           ctx,
		ctrl:          ctrl,
		debouncer:     NewDebouncer(window, opts...),
		refreshOnIdle: refreshOnIdle,
	}
}

// SetQuery records the raw input and restarts the debounce window.
func (s *Search[T]) SetQuery(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()

	s.debouncer.Trigger(s.settle)
}

// Query returns the raw input as last typed.
func (s *Search[T]) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Pending reports whether typed input has not been applied yet.
func (s *Search[T]) Pending() bool {
	return s.debouncer.Pending()
}

func (s *Search[T]) settle() {
	text := strings.TrimSpace(s.Query())
	applied := s.ctrl.Snapshot().Query.FilterText

	if text == "" && applied == "" && !s.refreshOnIdle {
		return
	}
	if err := s.ctrl.SetFilter(s.ctx, text); err != nil {
		s.ctrl.opts.logger.Debug("search fetch failed",
			zap.String("resource", s.ctrl.opts.label),
			zap.String("query", text),
			zap.Error(err),
		)
	}
}

// SetPage navigates immediately. Pending input is applied in the same fetch
// so the cancelled debounce cannot issue a duplicate.
func (s *Search[T]) SetPage(ctx context.Context, p int) error {
	return s.navigate(ctx, func(snap *Snapshot[T]) bool {
		snap.Query.Page = max(p, 0)
		return true
	})
}

// NextPage and PrevPage step from the live page with the controller's bounds.
func (s *Search[T]) NextPage(ctx context.Context) error {
	return s.navigate(ctx, (*Snapshot[T]).next)
}

func (s *Search[T]) PrevPage(ctx context.Context) error {
	return s.navigate(ctx, (*Snapshot[T]).prev)
}

func (s *Search[T]) navigate(ctx context.Context, move func(*Snapshot[T]) bool) error {
	s.debouncer.Stop()
	text := strings.TrimSpace(s.Query())

	return s.ctrl.mutate(ctx, func(snap *Snapshot[T]) bool {
		moved := move(snap)
		if !moved && snap.Query.FilterText == text {
			return false
		}
		snap.Query.FilterText = text
		return true
	})
}

// Close cancels any pending query; nothing is fetched afterwards.
func (s *Search[T]) Close() {
	s.debouncer.Close()
}
