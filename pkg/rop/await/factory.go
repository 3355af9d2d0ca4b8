package await

import (
	"context"

	"github.com/ib-77/erroror/pkg/rop"
)

// FromValue returns a future result holding the value produced by value.
func FromValue[T any](value Future[T]) Future[rop.Result[T]] {
	mustFuture(value, "value")
	return func(ctx context.Context) (rop.Result[T], error) {
		v, err := value(ctx)
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.From(v), nil
	}
}

// FromError returns a future error result holding the error produced by err.
func FromError[T any](err Future[rop.Error]) Future[rop.Result[T]] {
	mustFuture(err, "err")
	return func(ctx context.Context) (rop.Result[T], error) {
		e, ferr := err(ctx)
		if ferr != nil {
			return rop.Result[T]{}, ferr
		}
		return rop.FromError[T](e), nil
	}
}

// FromErrors returns a future error result holding the errors produced by
// errs. Awaiting panics with an *rop.ArgumentError when the produced list is
// nil or empty.
func FromErrors[T any](errs Future[[]rop.Error]) Future[rop.Result[T]] {
	mustFuture(errs, "errors")
	return func(ctx context.Context) (rop.Result[T], error) {
		list, err := errs(ctx)
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.FromErrors[T](list), nil
	}
}
