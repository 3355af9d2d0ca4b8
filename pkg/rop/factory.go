package rop

import "slices"

// From returns a result holding v.
func From[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// FromError returns an error result holding e alone.
func FromError[T any](e Error) Result[T] {
	return Result[T]{errors: []Error{e}}
}

// FromErrors returns an error result holding a copy of errs. It panics with
// an *ArgumentError when errs is nil or empty.
func FromErrors[T any](errs []Error) Result[T] {
	validateErrors(errs, "errors", "cannot create a Result from an empty list of errors; provide at least one error")
	return Result[T]{errors: slices.Clone(errs)}
}

// Build returns an error result holding the given errors, written inline:
//
//	r := rop.Build[int](rop.NotFound(), rop.Conflict())
//
// It panics with an *ArgumentError when no error is given.
func Build[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic(NewEmptyArgumentError("errors", "cannot create a Result from an empty collection of errors; provide at least one error"))
	}
	return Result[T]{errors: slices.Clone(errs)}
}

// ErrorsFrom retypes an error result. It panics with a *StateError when from
// holds a value.
func ErrorsFrom[In, Out any](from Result[In]) Result[Out] {
	if !from.IsError() {
		panic(&StateError{Message: "cannot retype a result that holds a value"})
	}
	return Result[Out]{errors: from.errors}
}
