package rop

import (
	"fmt"
	"slices"
	"strings"
)

// Result holds either a value of type T or a non-empty, ordered list of
// Errors. The zero Result holds the zero value of T.
//
// A Result is immutable once built and may be shared between goroutines.
type Result[T any] struct {
	value  T
	errors []Error
}

// IsError returns true if the result holds errors.
func (r Result[T]) IsError() bool {
	return len(r.errors) > 0
}

// Value returns the held value. It panics with a *StateError on an error
// result.
func (r Result[T]) Value() T {
	if r.IsError() {
		panic(&StateError{Message: "the Value property cannot be accessed when errors have been recorded; check IsError before accessing Value"})
	}
	return r.value
}

// ValueAsAny returns the held value boxed. It panics with a *StateError on an
// error result.
func (r Result[T]) ValueAsAny() any {
	if r.IsError() {
		panic(&StateError{Message: "the value cannot be accessed when errors have been recorded; check IsError before accessing ValueAsAny"})
	}
	return r.value
}

// Get returns the held value and true, or the zero value and false on an
// error result.
func (r Result[T]) Get() (T, bool) {
	if r.IsError() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Errors returns a copy of the held errors. ok is false on a value result,
// which has no error list at all.
func (r Result[T]) Errors() (errs []Error, ok bool) {
	if !r.IsError() {
		return nil, false
	}
	return slices.Clone(r.errors), true
}

// ErrorsOrEmpty returns a copy of the held errors, or an empty slice on a
// value result.
func (r Result[T]) ErrorsOrEmpty() []Error {
	if !r.IsError() {
		return []Error{}
	}
	return slices.Clone(r.errors)
}

// FirstError returns the first held error. It panics with a *StateError on a
// value result.
func (r Result[T]) FirstError() Error {
	if !r.IsError() {
		panic(&StateError{Message: "the FirstError property cannot be accessed when no errors have been recorded; check IsError before accessing FirstError"})
	}
	return r.errors[0]
}

// Err returns the held errors as a Go error, or nil on a value result. A
// single error is returned as is; several are joined.
func (r Result[T]) Err() error {
	return joinErrors(r.errors)
}

func (r Result[T]) String() string {
	if !r.IsError() {
		return fmt.Sprintf("Value(%v)", r.value)
	}
	parts := make([]string, len(r.errors))
	for i, e := range r.errors {
		parts[i] = e.Error()
	}
	return "Errors([" + strings.Join(parts, ", ") + "])"
}

// Equal reports whether a and b are in the same state and hold equal values
// or equal error lists.
func Equal[T comparable](a, b Result[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T any](a, b Result[T], eq func(a, b T) bool) bool {
	if a.IsError() != b.IsError() {
		return false
	}
	if a.IsError() {
		return slices.EqualFunc(a.errors, b.errors, Error.Equal)
	}
	return eq(a.value, b.value)
}
