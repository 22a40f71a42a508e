package query

import "time"

// options control a single fetch.
type options struct {
	staleTime        time.Duration
	retry            int
	retryDelay       time.Duration
	enabled          bool
	keepPreviousData bool
}

// Option configures a fetch.
type Option func(*options)

// WithStaleTime sets how long a value is served from the cache. Zero means
// every fetch goes to the network.
func WithStaleTime(d time.Duration) Option {
	return func(o *options) {
		o.staleTime = d
	}
}

// WithRetry sets the number of retries after a failed fetch.
func WithRetry(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.retry = n
	}
}

// WithRetryDelay sets the base delay of the exponential backoff.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		o.retryDelay = d
	}
}

// Enabled gates the query. A disabled query never calls its fetcher.
func Enabled(enabled bool) Option {
	return func(o *options) {
		o.enabled = enabled
	}
}

// KeepPreviousData serves the last value of the key family as a placeholder
// when the fetch fails.
func KeepPreviousData() Option {
	return func(o *options) {
		o.keepPreviousData = true
	}
}

const maxRetryDelay = 30 * time.Second

// backoff returns the delay before retry attempt n (0-based).
func (o options) backoff(n int) time.Duration {
	if o.retryDelay <= 0 {
		return 0
	}

	d := o.retryDelay << n
	if d <= 0 || d > maxRetryDelay {
		return maxRetryDelay
	}

	return d
}
