package query

import (
	"context"
	"sync/atomic"
)

// Mutate runs fn and, when it succeeds, onSuccess before returning. Failures
// are returned as *Error and skip onSuccess.
func Mutate[R any](ctx context.Context, fn func(ctx context.Context) (R, error), onSuccess func(R)) (R, error) {
	r, err := fn(ctx)
	if err != nil {
		var zero R

		return zero, toError(err)
	}

	if onSuccess != nil {
		onSuccess(r)
	}

	return r, nil
}

// Mutation is a reusable write with its cache side effects. V is the input
// and R the result.
type Mutation[V, R any] struct {
	fn        func(ctx context.Context, v V) (R, error)
	onSuccess func(ctx context.Context, v V, r R)
	pending   atomic.Int64
}

// NewMutation creates a mutation. onSuccess may be nil.
func NewMutation[V, R any](fn func(ctx context.Context, v V) (R, error), onSuccess func(ctx context.Context, v V, r R)) *Mutation[V, R] {
	return &Mutation[V, R]{fn: fn, onSuccess: onSuccess}
}

// Run executes the mutation with v.
func (m *Mutation[V, R]) Run(ctx context.Context, v V) (R, error) {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	return Mutate(ctx,
		func(ctx context.Context) (R, error) {
			return m.fn(ctx, v)
		},
		func(r R) {
			if m.onSuccess != nil {
				m.onSuccess(ctx, v, r)
			}
		},
	)
}

// Pending reports whether a run is in progress.
func (m *Mutation[V, R]) Pending() bool {
	return m.pending.Load() > 0
}
