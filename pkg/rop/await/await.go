package await

import (
	"context"

	"github.com/ib-77/erroror/pkg/rop"
)

// bind awaits input and hands the resolved result to step. A fault from
// input is returned as is and step is not called.
func bind[In, Out any](input Future[rop.Result[In]],
	step func(ctx context.Context, r rop.Result[In]) (rop.Result[Out], error)) Future[rop.Result[Out]] {

	mustFuture(input, "input")

	return func(ctx context.Context) (rop.Result[Out], error) {
		r, err := input(ctx)
		if err != nil {
			return rop.Result[Out]{}, err
		}
		return step(ctx, r)
	}
}

// Then maps the value of input with onValue. An error result is passed
// through, retyped, and onValue is not called.
func Then[In, Out any](input Future[rop.Result[In]],
	onValue func(ctx context.Context, v In) (Out, error)) Future[rop.Result[Out]] {

	return bind(input, func(ctx context.Context, r rop.Result[In]) (rop.Result[Out], error) {
		if r.IsError() {
			return rop.ErrorsFrom[In, Out](r), nil
		}
		out, err := onValue(ctx, r.Value())
		if err != nil {
			return rop.Result[Out]{}, err
		}
		return rop.From(out), nil
	})
}

// ThenResult is like Then for steps that may fail themselves.
func ThenResult[In, Out any](input Future[rop.Result[In]],
	onValue func(ctx context.Context, v In) (rop.Result[Out], error)) Future[rop.Result[Out]] {

	return bind(input, func(ctx context.Context, r rop.Result[In]) (rop.Result[Out], error) {
		if r.IsError() {
			return rop.ErrorsFrom[In, Out](r), nil
		}
		return onValue(ctx, r.Value())
	})
}

// ThenDo calls onValue for its side effect. The result is passed on
// unchanged unless onValue faults.
func ThenDo[T any](input Future[rop.Result[T]],
	onValue func(ctx context.Context, v T) error) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if !r.IsError() {
			if err := onValue(ctx, r.Value()); err != nil {
				return rop.Result[T]{}, err
			}
		}
		return r, nil
	})
}

// ElseValue recovers an error result with fallback.
func ElseValue[T any](input Future[rop.Result[T]], fallback T) Future[rop.Result[T]] {
	return bind(input, func(_ context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if !r.IsError() {
			return r, nil
		}
		return rop.From(fallback), nil
	})
}

// Else recovers an error result with the value computed by onError.
func Else[T any](input Future[rop.Result[T]],
	onError func(ctx context.Context, errs []rop.Error) (T, error)) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if !r.IsError() {
			return r, nil
		}
		v, err := onError(ctx, r.ErrorsOrEmpty())
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.From(v), nil
	})
}

// ElseError replaces the errors of an error result with the single error
// computed by onError.
func ElseError[T any](input Future[rop.Result[T]],
	onError func(ctx context.Context, errs []rop.Error) (rop.Error, error)) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if !r.IsError() {
			return r, nil
		}
		e, err := onError(ctx, r.ErrorsOrEmpty())
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.FromError[T](e), nil
	})
}

// ElseErrors replaces the errors of an error result with the list computed
// by onError. Awaiting panics with an *rop.ArgumentError when that list is
// nil or empty.
func ElseErrors[T any](input Future[rop.Result[T]],
	onError func(ctx context.Context, errs []rop.Error) ([]rop.Error, error)) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if !r.IsError() {
			return r, nil
		}
		errs, err := onError(ctx, r.ErrorsOrEmpty())
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.FromErrors[T](errs), nil
	})
}

// ElseDo calls onError for its side effect. The result is passed on
// unchanged unless onError faults.
func ElseDo[T any](input Future[rop.Result[T]],
	onError func(ctx context.Context, errs []rop.Error) error) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if r.IsError() {
			if err := onError(ctx, r.ErrorsOrEmpty()); err != nil {
				return rop.Result[T]{}, err
			}
		}
		return r, nil
	})
}

// FailIf turns a value result into an error result holding err when
// predicate reports true.
func FailIf[T any](input Future[rop.Result[T]],
	predicate func(ctx context.Context, v T) (bool, error), err rop.Error) Future[rop.Result[T]] {

	return bind(input, func(ctx context.Context, r rop.Result[T]) (rop.Result[T], error) {
		if r.IsError() {
			return r, nil
		}
		failed, perr := predicate(ctx, r.Value())
		if perr != nil {
			return rop.Result[T]{}, perr
		}
		if failed {
			return rop.FromError[T](err), nil
		}
		return r, nil
	})
}

// Switch awaits input and calls exactly one of onValue and onError.
func Switch[T any](ctx context.Context, input Future[rop.Result[T]],
	onValue func(ctx context.Context, v T) error,
	onError func(ctx context.Context, errs []rop.Error) error) error {

	mustFuture(input, "input")

	r, err := input(ctx)
	if err != nil {
		return err
	}
	if r.IsError() {
		return onError(ctx, r.ErrorsOrEmpty())
	}
	return onValue(ctx, r.Value())
}

// Match awaits input and returns the outcome of exactly one of onValue and
// onError.
func Match[In, Out any](ctx context.Context, input Future[rop.Result[In]],
	onValue func(ctx context.Context, v In) (Out, error),
	onError func(ctx context.Context, errs []rop.Error) (Out, error)) (Out, error) {

	mustFuture(input, "input")

	r, err := input(ctx)
	if err != nil {
		var zero Out
		return zero, err
	}
	if r.IsError() {
		return onError(ctx, r.ErrorsOrEmpty())
	}
	return onValue(ctx, r.Value())
}
