package chain

import (
	"context"

	"github.com/ib-77/erroror/pkg/rop"
	"github.com/ib-77/erroror/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) Chain[T] {
	return Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a value
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rop.From(value))
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Context returns the context handed to every step
func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(result rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, result: result}
}

// Then chains a pure transformation of the value
func Then[T, U any](c Chain[T], onValue func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		result: solo.Then(c.result, func(v T) U {
			return onValue(c.ctx, v)
		}),
	}
}

// ThenResult chains a step that returns rop.Result[U]
func ThenResult[T, U any](c Chain[T], onValue func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		result: solo.ThenResult(c.result, func(v T) rop.Result[U] {
			return onValue(c.ctx, v)
		}),
	}
}

// ThenDo performs a side effect on the value without changing the result
func (c Chain[T]) ThenDo(onValue func(context.Context, T)) Chain[T] {
	return c.with(solo.ThenDo(c.result, func(v T) {
		onValue(c.ctx, v)
	}))
}

// Else recovers from errors with a fallback value
func (c Chain[T]) Else(fallback T) Chain[T] {
	return c.with(solo.Else(c.result, fallback))
}

// ElseFunc recovers from errors with a computed value
func (c Chain[T]) ElseFunc(onError func(context.Context, []rop.Error) T) Chain[T] {
	return c.with(solo.ElseFunc(c.result, func(errs []rop.Error) T {
		return onError(c.ctx, errs)
	}))
}

// ElseError replaces the errors with a single error
func (c Chain[T]) ElseError(fallback rop.Error) Chain[T] {
	return c.with(solo.ElseError(c.result, fallback))
}

// ElseDo performs a side effect on the errors without changing the result
func (c Chain[T]) ElseDo(onError func(context.Context, []rop.Error)) Chain[T] {
	return c.with(solo.ElseDo(c.result, func(errs []rop.Error) {
		onError(c.ctx, errs)
	}))
}

// FailIf turns the value into err when predicate holds
func (c Chain[T]) FailIf(predicate func(context.Context, T) bool, err rop.Error) Chain[T] {
	return c.with(solo.FailIf(c.result, func(v T) bool {
		return predicate(c.ctx, v)
	}, err))
}

// Switch ends the chain with exactly one of the handlers
func (c Chain[T]) Switch(onValue func(context.Context, T), onError func(context.Context, []rop.Error)) {
	solo.Switch(c.result,
		func(v T) { onValue(c.ctx, v) },
		func(errs []rop.Error) { onError(c.ctx, errs) })
}

// Match collapses the chain into a final value using solo.Match
func Match[T, U any](c Chain[T], onValue func(context.Context, T) U, onError func(context.Context, []rop.Error) U) U {
	return solo.Match(c.result,
		func(v T) U { return onValue(c.ctx, v) },
		func(errs []rop.Error) U { return onError(c.ctx, errs) })
}
