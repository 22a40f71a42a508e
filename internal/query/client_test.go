package query

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	defaults := append([]Option{WithStaleTime(time.Minute), WithRetry(0), WithRetryDelay(time.Millisecond)}, opts...)
	c := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), defaults...)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

// counter is a fetcher returning a fixed value and counting its calls.
type counter struct {
	calls atomic.Int32
	value string
	err   error
}

func (f *counter) fetch(context.Context) (string, error) {
	f.calls.Add(1)

	return f.value, f.err
}

func TestFetch_ServesFreshValueFromCache(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := NewKey("alert", 7)
	f := &counter{value: "v1"}

	res, err := Fetch(ctx, c, key, f.fetch)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Data)

	res, err = Fetch(ctx, c, key, f.fetch)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.Data)
	assert.Equal(t, int32(1), f.calls.Load())
	assert.False(t, c.IsStale(key))

	now := time.Now()
	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	assert.True(t, c.IsStale(key))

	_, err = Fetch(ctx, c, key, f.fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestFetch_ZeroStaleTimeAlwaysFetches(t *testing.T) {
	c := newTestClient(t, WithStaleTime(0))
	f := &counter{value: "v"}

	for range 3 {
		_, err := Fetch(context.Background(), c, NewKey("alerts", "all"), f.fetch)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), f.calls.Load())
}

func TestFetch_DeduplicatesConcurrentCalls(t *testing.T) {
	c := newTestClient(t)
	key := NewKey("alert", 7)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release

		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 2)
	run := func(i int) {
		defer wg.Done()
		res, err := Fetch(context.Background(), c, key, fetch)
		assert.NoError(t, err)
		results[i] = res.Data
	}

	wg.Add(2)
	go run(0)
	<-started
	go run(1)

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []string{"shared", "shared"}, results)
}

func TestFetch_CallerCancelDoesNotFailOthers(t *testing.T) {
	c := newTestClient(t)
	key := NewKey("alert", 9)
	release := make(chan struct{})
	started := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		close(started)
		select {
		case <-release:
			return "done", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := Fetch(ctx, c, key, fetch)
		errCh <- err
	}()
	<-started
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	res, err := Fetch(context.Background(), c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, "done", res.Data)
}

func TestFetch_Disabled(t *testing.T) {
	c := newTestClient(t)
	f := &counter{value: "v"}

	_, err := Fetch(context.Background(), c, NewKey("alert", 0), f.fetch, Enabled(false))

	assert.ErrorIs(t, err, ErrQueryDisabled)
	assert.Zero(t, f.calls.Load())
}

func TestFetch_RetriesServerErrorsOnly(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "server error", status: http.StatusBadGateway, wantCalls: 2},
		{name: "not found", status: http.StatusNotFound, wantCalls: 1},
		{name: "unauthorized", status: http.StatusUnauthorized, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, WithRetry(1))
			f := &counter{err: domainerrors.NewAPIError(tt.status, "", "failed", "")}

			_, err := Fetch(context.Background(), c, NewKey("alert", 1), f.fetch)

			var qErr *Error
			require.True(t, errors.As(err, &qErr))
			assert.Equal(t, tt.status, qErr.Status)
			assert.Equal(t, "failed", qErr.Message)
			assert.Equal(t, tt.wantCalls, f.calls.Load())
		})
	}
}

func TestFetch_TransportErrorIsRetried(t *testing.T) {
	c := newTestClient(t, WithRetry(2))
	f := &counter{err: errors.New("dial tcp: connection refused")}

	_, err := Fetch(context.Background(), c, NewKey("alerts", "all"), f.fetch)

	var qErr *Error
	require.True(t, errors.As(err, &qErr))
	assert.Zero(t, qErr.Status)
	assert.Equal(t, int32(3), f.calls.Load())
}

func TestFetch_KeepPreviousData(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	page0 := NewKey("alerts", "all", listParams{Page: 0, Size: 20})
	page1 := NewKey("alerts", "all", listParams{Page: 1, Size: 20})

	_, err := Fetch(ctx, c, page0, (&counter{value: "page 0"}).fetch)
	require.NoError(t, err)

	failing := &counter{err: domainerrors.NewAPIError(http.StatusServiceUnavailable, "", "", "")}

	res, err := Fetch(ctx, c, page1, failing.fetch, KeepPreviousData())
	require.Error(t, err)
	assert.True(t, res.Placeholder)
	assert.Equal(t, "page 0", res.Data)

	res, err = Fetch(ctx, c, page1, failing.fetch)
	require.Error(t, err)
	assert.False(t, res.Placeholder)
	assert.Empty(t, res.Data)

	other := NewKey("alert", 7)
	res, err = Fetch(ctx, c, other, failing.fetch, KeepPreviousData())
	require.Error(t, err)
	assert.False(t, res.Placeholder)
}

func TestInvalidate_PrefixMarksOnlyMatchingEntries(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	list := NewKey("alerts", "all", listParams{Size: 20})
	grouped := NewKey("alerts", "group", "range", 3, listParams{CompanyID: 3})
	single := NewKey("alert", 7)
	users := NewKey("company-users", listParams{CompanyID: 3})

	for _, key := range []Key{list, grouped, single, users} {
		_, err := Fetch(ctx, c, key, (&counter{value: "v"}).fetch)
		require.NoError(t, err)
	}

	c.Invalidate(NewKey("alerts"))

	assert.True(t, c.IsStale(list))
	assert.True(t, c.IsStale(grouped))
	assert.False(t, c.IsStale(single))
	assert.False(t, c.IsStale(users))

	v, ok := Get[string](c, list)
	assert.True(t, ok, "invalidated data stays readable")
	assert.Equal(t, "v", v)
}

func TestInvalidate_RefetchesObservedEntries(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := NewKey("alerts", "all", listParams{Size: 20})

	observed := &counter{value: "fresh"}
	_, err := Fetch(ctx, c, key, observed.fetch)
	require.NoError(t, err)

	unobservedKey := NewKey("alerts", "all", listParams{Page: 1, Size: 20})
	unobserved := &counter{value: "page 1"}
	_, err = Fetch(ctx, c, unobservedKey, unobserved.fetch)
	require.NoError(t, err)

	events := make(chan Event, 4)
	unsubscribe := c.Subscribe(key, func(ev Event) { events <- ev })
	defer unsubscribe()

	c.Invalidate(NewKey("alerts"))
	c.wg.Wait()

	select {
	case ev := <-events:
		require.NoError(t, ev.Err)
		assert.Equal(t, "fresh", ev.Data)
	case <-time.After(time.Second):
		t.Fatal("observer was not notified")
	}

	assert.Equal(t, int32(2), observed.calls.Load())
	assert.Equal(t, int32(1), unobserved.calls.Load())
	assert.False(t, c.IsStale(key))
	assert.True(t, c.IsStale(unobservedKey))
}

func TestInvalidate_SupersedesFetchInFlight(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := NewKey("alert", 7)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	fetch := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release

			return "old", nil
		}

		return "new", nil
	}

	done := make(chan string, 1)
	go func() {
		res, err := Fetch(ctx, c, key, fetch)
		assert.NoError(t, err)
		done <- res.Data
	}()
	<-started

	c.Invalidate(NewKey("alert"))

	res, err := Fetch(ctx, c, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, "new", res.Data)
	assert.Equal(t, int32(2), calls.Load())

	close(release)
	assert.Equal(t, "new", <-done)

	cached, ok := Get[string](c, key)
	require.True(t, ok)
	assert.Equal(t, "new", cached)
	assert.False(t, c.IsStale(key))
}

func TestSetData_NotOverwrittenByFetchInFlight(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	key := NewKey("alert", 7)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := Fetch(ctx, c, key, func(context.Context) (string, error) {
			close(started)
			<-release

			return "old", nil
		})
		assert.NoError(t, err)
	}()
	<-started

	SetData(c, key, "written")
	close(release)
	<-done

	cached, ok := Get[string](c, key)
	require.True(t, ok)
	assert.Equal(t, "written", cached)
	assert.False(t, c.IsStale(key))
}

func TestClear_DropsFetchInFlight(t *testing.T) {
	c := newTestClient(t)
	key := NewKey("company-users", 3)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err := Fetch(context.Background(), c, key, func(context.Context) (string, error) {
			close(started)
			<-release

			return "previous session", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "previous session", res.Data)
	}()
	<-started

	c.Clear()
	close(release)
	<-done

	_, ok := Get[string](c, key)
	assert.False(t, ok)
}

func TestSetDataAndClear(t *testing.T) {
	c := newTestClient(t)
	key := NewKey("alert", 7)

	events := 0
	unsubscribe := c.Subscribe(key, func(Event) { events++ })
	defer unsubscribe()

	SetData(c, key, "acknowledged")

	v, ok := Get[string](c, key)
	require.True(t, ok)
	assert.Equal(t, "acknowledged", v)
	assert.Equal(t, 1, events)

	_, ok = Get[int](c, key)
	assert.False(t, ok)

	c.Clear()
	_, ok = Get[string](c, key)
	assert.False(t, ok)
	assert.True(t, c.IsStale(key))
}

func TestMutation(t *testing.T) {
	c := newTestClient(t)
	var order []string

	m := NewMutation(
		func(_ context.Context, id int64) (string, error) {
			if id <= 0 {
				return "", domainerrors.NewAPIError(http.StatusBadRequest, "", "invalid id", "")
			}

			return "ok", nil
		},
		func(_ context.Context, id int64, _ string) {
			order = append(order, "alert")
			c.Invalidate(NewKey("alert", id))
			order = append(order, "alerts")
			c.Invalidate(NewKey("alerts"))
		},
	)

	_, err := m.Run(context.Background(), 0)
	var qErr *Error
	require.True(t, errors.As(err, &qErr))
	assert.Equal(t, http.StatusBadRequest, qErr.Status)
	assert.Empty(t, order)

	r, err := m.Run(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ok", r)
	assert.Equal(t, []string{"alert", "alerts"}, order)
	assert.False(t, m.Pending())
}

func TestPoll_StopsOnCancel(t *testing.T) {
	c := newTestClient(t)
	key := NewKey("company-users", listParams{CompanyID: 3})
	f := &counter{value: "users"}

	ctx, cancel := context.WithCancel(context.Background())
	updates := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- Poll(ctx, c, key, f.fetch, 5*time.Millisecond, func(res Result[string], err error) {
			assert.NoError(t, err)
			assert.Equal(t, "users", res.Data)
			updates++
			if updates == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poll did not stop")
	}

	calls := f.calls.Load()
	assert.GreaterOrEqual(t, calls, int32(3))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, f.calls.Load())
}

func TestPoll_Disabled(t *testing.T) {
	c := newTestClient(t)
	f := &counter{value: "v"}

	err := Poll(context.Background(), c, NewKey("company-users"), f.fetch, time.Millisecond, func(Result[string], error) {}, Enabled(false))

	assert.ErrorIs(t, err, ErrQueryDisabled)
	assert.Zero(t, f.calls.Load())
}
