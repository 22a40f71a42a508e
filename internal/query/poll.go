package query

import (
	"context"
	"sync"
	"time"
)

// Poll observes key and refetches it every interval until ctx is done.
// onUpdate receives the current value first and then every change, including
// the ones caused by invalidations elsewhere. Calls to onUpdate never overlap.
// Poll returns ctx.Err() once ctx is done.
func Poll[T any](ctx context.Context, c *Client, key Key, fetch func(ctx context.Context) (T, error), interval time.Duration, onUpdate func(Result[T], error), opts ...Option) error {
	o := c.options(opts)
	if !o.enabled {
		return ErrQueryDisabled
	}
	if interval <= 0 {
		interval = time.Second
	}

	var mu sync.Mutex
	done := false
	deliver := func(ev Event) {
		mu.Lock()
		defer mu.Unlock()

		if done {
			return
		}
		if ev.Err == nil {
			onUpdate(result[T](ev.Data, ev.UpdatedAt, false), nil)

			return
		}

		v, at, placeholder, err := c.fallback(key, o, ev.Err)
		onUpdate(result[T](v, at, placeholder), err)
	}

	unsubscribe := c.Subscribe(key, deliver)
	defer func() {
		unsubscribe()

		mu.Lock()
		done = true
		mu.Unlock()
	}()

	fn := erase(fetch)

	c.mu.Lock()
	e := c.entryLocked(key)
	e.fetch, e.opts = fn, o
	fresh := e.fresh(c.now())
	current, at := e.data, e.updatedAt
	c.mu.Unlock()

	if fresh {
		mu.Lock()
		onUpdate(result[T](current, at, false), nil)
		mu.Unlock()
	} else {
		_, _, _, _ = c.fetch(ctx, key, fn, o, true)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, _, _, _ = c.fetch(ctx, key, fn, o, true)
		}
	}
}
