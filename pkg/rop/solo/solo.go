package solo

import (
	"github.com/ib-77/erroror/pkg/rop"
)

// Then maps the value of input with onValue. An error result is passed
// through, retyped, and onValue is not called.
func Then[In, Out any](input rop.Result[In], onValue func(v In) Out) rop.Result[Out] {
	if input.IsError() {
		return rop.ErrorsFrom[In, Out](input)
	}
	return rop.From(onValue(input.Value()))
}

// ThenResult is like Then for steps that may fail themselves.
func ThenResult[In, Out any](input rop.Result[In], onValue func(v In) rop.Result[Out]) rop.Result[Out] {
	if input.IsError() {
		return rop.ErrorsFrom[In, Out](input)
	}
	return onValue(input.Value())
}

// ThenDo calls onValue for its side effect and returns input unchanged.
func ThenDo[T any](input rop.Result[T], onValue func(v T)) rop.Result[T] {
	if !input.IsError() {
		onValue(input.Value())
	}
	return input
}

// Else recovers an error result with fallback.
func Else[T any](input rop.Result[T], fallback T) rop.Result[T] {
	if !input.IsError() {
		return input
	}
	return rop.From(fallback)
}

// ElseFunc recovers an error result with the value computed by onError.
// onError is never called for a value result.
func ElseFunc[T any](input rop.Result[T], onError func(errs []rop.Error) T) rop.Result[T] {
	if !input.IsError() {
		return input
	}
	return rop.From(onError(input.ErrorsOrEmpty()))
}

// ElseError replaces the errors of an error result with fallback.
func ElseError[T any](input rop.Result[T], fallback rop.Error) rop.Result[T] {
	if !input.IsError() {
		return input
	}
	return rop.FromError[T](fallback)
}

// ElseErrorFunc replaces the errors of an error result with the single error
// computed by onError.
func ElseErrorFunc[T any](input rop.Result[T], onError func(errs []rop.Error) rop.Error) rop.Result[T] {
	if !input.IsError() {
		return input
	}
	return rop.FromError[T](onError(input.ErrorsOrEmpty()))
}

// ElseErrorsFunc replaces the errors of an error result with the list
// computed by onError. It panics with an *rop.ArgumentError when that list
// is nil or empty.
func ElseErrorsFunc[T any](input rop.Result[T], onError func(errs []rop.Error) []rop.Error) rop.Result[T] {
	if !input.IsError() {
		return input
	}
	return rop.FromErrors[T](onError(input.ErrorsOrEmpty()))
}

// ElseDo calls onError for its side effect and returns input unchanged.
func ElseDo[T any](input rop.Result[T], onError func(errs []rop.Error)) rop.Result[T] {
	if input.IsError() {
		onError(input.ErrorsOrEmpty())
	}
	return input
}

// FailIf turns a value result into an error result holding err when
// predicate reports true. predicate is not called for an error result.
func FailIf[T any](input rop.Result[T], predicate func(v T) bool, err rop.Error) rop.Result[T] {
	if input.IsError() {
		return input
	}
	if predicate(input.Value()) {
		return rop.FromError[T](err)
	}
	return input
}

// Switch calls exactly one of onValue and onError.
func Switch[T any](input rop.Result[T], onValue func(v T), onError func(errs []rop.Error)) {
	if input.IsError() {
		onError(input.ErrorsOrEmpty())
		return
	}
	onValue(input.Value())
}

// SwitchFirst is like Switch but onError receives only the first error.
func SwitchFirst[T any](input rop.Result[T], onValue func(v T), onFirstError func(err rop.Error)) {
	if input.IsError() {
		onFirstError(input.FirstError())
		return
	}
	onValue(input.Value())
}

// Match calls exactly one of onValue and onError and returns what it returns.
func Match[In, Out any](input rop.Result[In], onValue func(v In) Out, onError func(errs []rop.Error) Out) Out {
	if input.IsError() {
		return onError(input.ErrorsOrEmpty())
	}
	return onValue(input.Value())
}

// MatchFirst is like Match but onError receives only the first error.
func MatchFirst[In, Out any](input rop.Result[In], onValue func(v In) Out, onFirstError func(err rop.Error) Out) Out {
	if input.IsError() {
		return onFirstError(input.FirstError())
	}
	return onValue(input.Value())
}
