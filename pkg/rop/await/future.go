package await

import (
	"context"
	"errors"

	"github.com/ib-77/erroror/pkg/rop"
)

// ErrClosed is returned by a FromChan future whose channel closed before
// delivering a value.
var ErrClosed = errors.New("await: channel closed without a value")

// Future is a pending producer of a value. Calling it blocks until the value
// is ready or the producer faults. A Future does no work until it is awaited,
// and awaiting it twice runs the producer twice.
type Future[T any] func(ctx context.Context) (T, error)

// Await runs the producer.
func (f Future[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Ready returns a future that yields v at once.
func Ready[T any](v T) Future[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// FromChan returns a future that yields the first value received from ch.
// It fails with ErrClosed if ch is closed first, or with ctx.Err() if ctx is
// done first.
func FromChan[T any](ch <-chan T) Future[T] {
	if ch == nil {
		panic(rop.NewNilArgumentError("ch"))
	}
	return func(ctx context.Context) (T, error) {
		var zero T
		select {
		case v, ok := <-ch:
			if !ok {
				return zero, ErrClosed
			}
			return v, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Pure adapts a synchronous step for use in an asynchronous chain.
func Pure[In, Out any](f func(v In) Out) func(ctx context.Context, v In) (Out, error) {
	return func(_ context.Context, v In) (Out, error) {
		return f(v), nil
	}
}

func mustFuture[T any](f Future[T], param string) {
	if f == nil {
		panic(rop.NewNilArgumentError(param))
	}
}
