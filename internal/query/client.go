// Package query is the client-side cache between the command front-end and
// the resource services. It deduplicates concurrent fetches of one key,
// serves fresh values from memory, invalidates whole key families by prefix
// and refetches what is still being observed.
package query

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"alerty/config"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// Event is delivered to observers of a key after every fetch, write or failure.
type Event struct {
	Key       Key
	Data      any
	Err       error
	UpdatedAt time.Time
}

// Result is the outcome of a fetch. Placeholder is set when Data belongs to
// another key of the same family, or to an earlier fetch of this key, and
// is shown while the requested data is unavailable.
type Result[T any] struct {
	Data        T
	Placeholder bool
	UpdatedAt   time.Time
}

type fetchFunc func(ctx context.Context) (any, error)

type fetched struct {
	data any
	at   time.Time
}

type entry struct {
	key       Key
	data      any
	hasData   bool
	err       error
	updatedAt time.Time
	invalid   bool
	// gen moves on every write, invalidation or clear. A fetch that started
	// at an older gen is superseded.
	gen       uint64
	dataGen   uint64
	fetch     fetchFunc
	opts      options
	observers map[int]func(Event)
}

func (e *entry) fresh(now time.Time) bool {
	if !e.hasData || e.invalid {
		return false
	}

	return e.opts.staleTime > 0 && now.Sub(e.updatedAt) < e.opts.staleTime
}

// Client is the query cache. It is safe for concurrent use.
type Client struct {
	mu       sync.Mutex
	entries  map[string]*entry
	group    singleflight.Group
	defaults options
	logger   *slog.Logger
	now      func() time.Time
	nextID   int
	gen      uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Params holds dependencies for the query client, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the query client with the configured defaults and stops its
// background refetches on shutdown.
func New(params Params) *Client {
	cfg := params.Config.Query

	c := NewClient(params.Logger,
		WithStaleTime(cfg.StaleTime),
		WithRetry(cfg.Retry),
		WithRetryDelay(cfg.RetryDelay),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})

	return c
}

// NewClient creates a query client. defaults apply to every fetch and can be
// overridden per call.
func NewClient(logger *slog.Logger, defaults ...Option) *Client {
	o := options{
		retry:      1,
		retryDelay: time.Second,
		enabled:    true,
	}
	for _, opt := range defaults {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		entries:  make(map[string]*entry),
		defaults: o,
		logger:   logger,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Fetch returns the cached value of key when it is fresh, and otherwise runs
// fetch. Concurrent fetches of one key share a single call. The shared call
// runs on a detached context so a caller giving up does not fail the others.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetch func(ctx context.Context) (T, error), opts ...Option) (Result[T], error) {
	o := c.options(opts)
	if !o.enabled {
		return Result[T]{}, ErrQueryDisabled
	}

	v, at, placeholder, err := c.fetch(ctx, key, erase(fetch), o, false)

	return result[T](v, at, placeholder), err
}

// Get returns the cached value of key, fresh or not.
func Get[T any](c *Client, key Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key.String()]
	if !ok || !e.hasData {
		return zero, false
	}

	v, ok := e.data.(T)
	if !ok {
		return zero, false
	}

	return v, true
}

// SetData writes value under key as if it had just been fetched. Fetches
// of key already in flight do not overwrite it.
func SetData[T any](c *Client, key Key, value T) {
	c.mu.Lock()
	e := c.entryLocked(key)
	c.bumpLocked(e)
	now := c.now()
	e.data, e.hasData, e.err = value, true, nil
	e.updatedAt, e.dataGen = now, e.gen
	e.invalid = false
	observers := snapshot(e.observers)
	c.mu.Unlock()

	notify(observers, Event{Key: key, Data: value, UpdatedAt: now})
}

// IsStale reports whether the next fetch of key will go to the network.
func (c *Client) IsStale(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return true
	}

	return !e.fresh(c.now())
}

// Invalidate marks every entry under prefix as stale and refetches, in the
// background, the ones that still have observers. It does not wait for the
// refetches. Fetches under prefix already in flight are superseded.
func (c *Client) Invalidate(prefix Key) {
	c.mu.Lock()
	var refetch []*entry
	for id, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.invalid = true
		c.bumpLocked(e)
		c.group.Forget(id)
		if len(e.observers) > 0 && e.fetch != nil {
			refetch = append(refetch, e)
		}
	}
	c.mu.Unlock()

	c.logger.Debug("Invalidated queries",
		slog.String("prefix", prefix.String()),
		slog.Int("refetching", len(refetch)),
	)

	for _, e := range refetch {
		c.refetch(e.key, e.fetch, e.opts)
	}
}

// Subscribe registers fn for the events of key until the returned function is called.
func (c *Client) Subscribe(key Key, fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	id := c.nextID
	c.nextID++
	e.observers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(e.observers, id)
	}
}

// Clear drops every cached value. Entries that are still observed are kept
// empty so their observers keep receiving events.
func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for id, e := range c.entries {
		c.group.Forget(id)
		if len(e.observers) == 0 {
			delete(c.entries, id)

			continue
		}
		e.data, e.hasData, e.err = nil, false, nil
		e.invalid = true
		e.gen, e.dataGen = c.gen, c.gen
	}
}

// Close stops background refetches and waits for them to return.
func (c *Client) Close() error {
	c.cancel()
	c.wg.Wait()

	return nil
}

func (c *Client) options(opts []Option) options {
	o := c.defaults
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (c *Client) entryLocked(key Key) *entry {
	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key, gen: c.gen, dataGen: c.gen, observers: make(map[int]func(Event))}
		c.entries[id] = e
	}

	return e
}

func (c *Client) fetch(ctx context.Context, key Key, fn fetchFunc, o options, force bool) (any, time.Time, bool, error) {
	id := key.String()

	c.mu.Lock()
	e := c.entryLocked(key)
	e.fetch, e.opts = fn, o
	if !force && e.fresh(c.now()) {
		v, at := e.data, e.updatedAt
		c.mu.Unlock()

		return v, at, false, nil
	}
	c.mu.Unlock()

	ch := c.group.DoChan(id, func() (any, error) {
		runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		defer cancel()
		stop := context.AfterFunc(c.ctx, cancel)
		defer stop()

		return c.run(runCtx, key, fn, o)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return c.fallback(key, o, toError(res.Err))
		}
		f := res.Val.(fetched)

		return f.data, f.at, false, nil
	case <-ctx.Done():
		return c.fallback(key, o, ctx.Err())
	}
}

func (c *Client) run(ctx context.Context, key Key, fn fetchFunc, o options) (any, error) {
	var err error
	for attempt := 0; ; attempt++ {
		gen := c.generation(key)

		var v any
		v, err = fn(ctx)
		if err == nil {
			return c.store(key, v, gen), nil
		}

		if attempt >= o.retry || !retryable(err) {
			break
		}

		delay := o.backoff(attempt)
		c.logger.Debug("Query failed, retrying",
			slog.String("key", key.String()),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.fail(key, err)

			return nil, err
		case <-timer.C:
		}
	}

	c.fail(key, err)

	return nil, err
}

func (c *Client) generation(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entryLocked(key).gen
}

func (c *Client) bumpLocked(e *entry) {
	c.gen++
	e.gen = c.gen
}

// store saves the result of a fetch that started at gen. A superseded fetch
// never replaces data written or cleared after it started, and leaves the
// entry stale.
func (c *Client) store(key Key, v any, gen uint64) fetched {
	c.mu.Lock()
	e := c.entryLocked(key)
	now := c.now()
	superseded := e.gen != gen
	if superseded && e.dataGen > gen {
		f := fetched{data: v, at: now}
		if e.hasData {
			f = fetched{data: e.data, at: e.updatedAt}
		}
		c.mu.Unlock()

		c.logger.Debug("Dropped superseded fetch", slog.String("key", key.String()))

		return f
	}

	e.data, e.hasData, e.err = v, true, nil
	e.updatedAt, e.dataGen = now, gen
	e.invalid = superseded
	observers := snapshot(e.observers)
	c.mu.Unlock()

	notify(observers, Event{Key: key, Data: v, UpdatedAt: now})

	return fetched{data: v, at: now}
}

func (c *Client) fail(key Key, err error) {
	qErr := toError(err)

	c.mu.Lock()
	e := c.entryLocked(key)
	e.err = qErr
	observers := snapshot(e.observers)
	c.mu.Unlock()

	c.logger.Debug("Query failed",
		slog.String("key", key.String()),
		slog.Any("error", err),
	)

	notify(observers, Event{Key: key, Err: qErr})
}

// fallback pairs err with placeholder data when the query keeps previous data.
func (c *Client) fallback(key Key, o options, err error) (any, time.Time, bool, error) {
	if o.keepPreviousData {
		if v, at, ok := c.previous(key); ok {
			return v, at, true, err
		}
	}

	return nil, time.Time{}, false, err
}

// previous returns the last value of key, or the most recent value of the key family.
func (c *Client) previous(key Key) (any, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key.String()]; ok && e.hasData {
		return e.data, e.updatedAt, true
	}

	family := key.Family()
	var best *entry
	for _, e := range c.entries {
		if !e.hasData || len(e.key) != len(key) || !e.key.HasPrefix(family) {
			continue
		}
		if best == nil || e.updatedAt.After(best.updatedAt) {
			best = e
		}
	}
	if best == nil {
		return nil, time.Time{}, false
	}

	return best.data, best.updatedAt, true
}

func (c *Client) refetch(key Key, fn fetchFunc, o options) {
	if c.ctx.Err() != nil {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		if _, _, _, err := c.fetch(c.ctx, key, fn, o, true); err != nil {
			c.logger.Debug("Background refetch failed",
				slog.String("key", key.String()),
				slog.Any("error", err),
			)
		}
	}()
}

func erase[T any](fetch func(ctx context.Context) (T, error)) fetchFunc {
	return func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
}

func result[T any](v any, at time.Time, placeholder bool) Result[T] {
	r := Result[T]{Placeholder: placeholder, UpdatedAt: at}
	if data, ok := v.(T); ok {
		r.Data = data
	}

	return r
}

func snapshot(observers map[int]func(Event)) []func(Event) {
	out := make([]func(Event), 0, len(observers))
	for _, fn := range observers {
		out = append(out, fn)
	}

	return out
}

func notify(observers []func(Event), ev Event) {
	for _, fn := range observers {
		fn(ev)
	}
}

// Module provides the query client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
