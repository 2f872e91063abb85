// Package listing coordinates the paginated, filtered collection shown on a
// dashboard screen: fetching pages, debounced name search, and reconciling the
// page after a delete.
package listing

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmehra2102/menudash/internal/domain"
	"github.com/dmehra2102/menudash/internal/i18n"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Source is the read side of a remote collection.
type Source[T any] interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
	Search(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
	ByCategory(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error)
}

// Messages renders user-facing text. Satisfied by *i18n.Localizer.
type Messages interface {
	T(key string, args ...any) string
	Error(err error) string
}

type options struct {
	label    string
	logger   *zap.Logger
	messages Messages
	notify   func()
}

type Option func(*options)

// WithLabel names the resource in logs and metrics.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMessages localizes messages; English is used otherwise.
func WithMessages(m Messages) Option {
	return func(o *options) { o.messages = m }
}

// WithNotify registers a hook called after every state change.
func WithNotify(fn func()) Option {
	return func(o *options) { o.notify = fn }
}

// Controller owns the paged collection state of one listing screen.
// Only the most recently issued fetch may change that state.
type Controller[T any] struct {
	source Source[T]
	store  domain.PageStore
	key    string
	opts   options
	tracer trace.Tracer

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	closed  bool
	cleared bool
	state   Snapshot[T]

	// persistMu serializes page writes so the last one stores the live page.
	persistMu sync.Mutex
}

type request struct {
	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc
	query  domain.ListQuery
}

// New restores the page persisted under key and returns an idle controller.
func New[T any](ctx context.Context, source Source[T], store domain.PageStore, key string, pageSize int, opts ...Option) *Controller[T] {
	o := options{label: key, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.messages == nil {
		o.messages = i18n.New("en")
	}

	c := &Controller[T]{
		source: source,
		store:  store,
		key:    key,
		opts:   o,
		tracer: otel.Tracer("listing-controller"),
	}
	c.state.Query = domain.ListQuery{Page: c.restorePage(ctx), PageSize: pageSize}
	c.state.Items = make([]T, 0)
	c.state.TotalPages = 1
	return c
}

func (c *Controller[T]) restorePage(ctx context.Context) int {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.opts.logger.Warn("failed to restore page", zap.String("key", c.key), zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		c.opts.logger.Warn("ignoring invalid persisted page", zap.String("key", c.key), zap.String("value", raw))
		return 0
	}
	return page
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Items = append(make([]T, 0, len(c.state.Items)), c.state.Items...)
	if c.state.Query.CategoryID != nil {
		id := *c.state.Query.CategoryID
		s.Query.CategoryID = &id
	}
	return s
}

// Refresh fetches the current query. A result is applied only if no newer
// request was issued meanwhile; superseded requests are cancelled and their
// responses discarded.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	req := c.issueLocked(ctx)
	c.mu.Unlock()

	return c.run(ctx, req)
}

// issueLocked supersedes any in-flight request. c.mu must be held.
func (c *Controller[T]) issueLocked(ctx context.Context) request {
	c.seq++
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state.Status = StatusLoading
	return request{seq: c.seq, ctx: ctx, cancel: cancel, query: c.state.Query}
}

func (c *Controller[T]) run(parent context.Context, req request) error {
	defer req.cancel()
	c.changed()

	q := req.query
	ctx, span := c.tracer.Start(req.ctx, "listing.Refresh")
	defer span.End()

	span.SetAttributes(
		attribute.String("listing.resource", c.opts.label),
		attribute.Int("listing.page", q.Page),
		attribute.Bool("listing.filtered", q.Filtered()),
	)

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	if req.seq != c.seq || c.closed {
		c.mu.Unlock()
		staleResponsesTotal.WithLabelValues(c.opts.label).Inc()
		span.SetAttributes(attribute.Bool("listing.stale", true))
		return nil
	}
	c.cancel = nil
	switch {
	case err != nil:
		c.state.Status = StatusError
		c.state.Items = make([]T, 0)
		c.state.TotalPages = 1
		c.state.TotalElements = 0
		c.state.Err = err
		c.state.Message = c.opts.messages.Error(err)
	case q.Page > 0 && q.Page >= page.TotalPages:
		// The collection shrank below the requested page: move to its last page.
		c.state.Query.Page = page.TotalPages - 1
		next := c.issueLocked(parent)
		c.mu.Unlock()

		span.SetAttributes(attribute.Bool("listing.clamped", true))
		c.opts.logger.Debug("page out of range, moving to last page",
			zap.String("resource", c.opts.label),
			zap.Int("page", q.Page),
			zap.Int("total_pages", page.TotalPages),
		)
		c.persistPage(parent)
		return c.run(parent, next)
	default:
		c.state.Status = StatusSuccess
		c.state.Items = page.Items
		c.state.TotalPages = page.TotalPages
		c.state.TotalElements = page.TotalElements
		c.state.Err = nil
		c.state.Message = ""
	}
	c.mu.Unlock()

	if err != nil {
		span.RecordError(err)
		fetchesTotal.WithLabelValues(c.opts.label, "error").Inc()
		c.opts.logger.Warn("listing fetch failed",
			zap.String("resource", c.opts.label),
			zap.Int("page", q.Page),
			zap.String("filter", q.FilterText),
			zap.Error(err),
		)
	} else {
		fetchesTotal.WithLabelValues(c.opts.label, "success").Inc()
	}

	c.changed()
	return err
}

func (c *Controller[T]) fetch(ctx context.Context, q domain.ListQuery) (*domain.Page[T], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var (
		page *domain.Page[T]
		err  error
	)
	switch {
	case q.FilterText != "":
		page, err = c.source.Search(ctx, q)
	case q.CategoryID != nil:
		page, err = c.source.ByCategory(ctx, q)
	default:
		page, err = c.source.List(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("%w: empty response", domain.ErrServer)
	}

	page.Normalize(q.PageSize)
	return page, nil
}

// SetPage moves to page p (clamped at 0), persists it and fetches it.
func (c *Controller[T]) SetPage(ctx context.Context, p int) error {
	return c.mutate(ctx, func(s *Snapshot[T]) bool {
		s.Query.Page = max(p, 0)
		return true
	})
}

// NextPage advances one page; it is a no-op on the last page.
func (c *Controller[T]) NextPage(ctx context.Context) error {
	return c.mutate(ctx, (*Snapshot[T]).next)
}

// PrevPage goes back one page; it is a no-op on page 0.
func (c *Controller[T]) PrevPage(ctx context.Context) error {
	return c.mutate(ctx, (*Snapshot[T]).prev)
}

// SetCategory filters by category id (nil clears) and returns to page 0.
func (c *Controller[T]) SetCategory(ctx context.Context, id *string) error {
	return c.mutate(ctx, func(s *Snapshot[T]) bool {
		if id == nil || *id == "" {
			s.Query.CategoryID = nil
		} else {
			v := *id
			s.Query.CategoryID = &v
		}
		s.Query.Page = 0
		return true
	})
}

// SetFilter applies a name filter to the current page and fetches it.
func (c *Controller[T]) SetFilter(ctx context.Context, text string) error {
	return c.mutate(ctx, func(s *Snapshot[T]) bool {
		s.Query.FilterText = text
		return true
	})
}

// mutate edits the state under the lock and, if fn reports a change, issues
// the fetch for the edited query before releasing it.
func (c *Controller[T]) mutate(ctx context.Context, fn func(s *Snapshot[T]) bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	before := c.state.Query.Page
	if !fn(&c.state) {
		c.mu.Unlock()
		return nil
	}
	moved := c.state.Query.Page != before
	req := c.issueLocked(ctx)
	c.mu.Unlock()

	if moved {
		c.persistPage(ctx)
	}
	return c.run(ctx, req)
}

// persistPage stores the page current at the time of writing, not the one
// that triggered the call, so overlapping writes settle on the latest page.
func (c *Controller[T]) persistPage(ctx context.Context) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	page, cleared := c.state.Query.Page, c.cleared
	c.mu.Unlock()
	if cleared {
		return
	}

	if err := c.store.Set(ctx, c.key, strconv.Itoa(page)); err != nil {
		c.opts.logger.Warn("failed to persist page", zap.String("key", c.key), zap.Error(err))
	}
}

// Detach stops the controller but keeps the persisted page, so a screen
// rebuilt later resumes where it left off.
func (c *Controller[T]) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Close stops the controller and clears the persisted page; the next visit
// starts at page 0.
func (c *Controller[T]) Close(ctx context.Context) error {
	c.mu.Lock()
	c.stopLocked()
	c.cleared = true
	c.mu.Unlock()

	c.persistMu.Lock()
	defer c.persistMu.Unlock()
	if err := c.store.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear page %s: %w", c.key, err)
	}
	return nil
}

func (c *Controller[T]) stopLocked() {
	c.closed = true
	c.state.Status = StatusIdle
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller[T]) changed() {
	if c.opts.notify != nil {
		c.opts.notify()
	}
}
