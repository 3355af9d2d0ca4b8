package rop

// View is the untyped, read-only face of a Result for call sites that do not
// know the value type, such as logging and serialization.
type View interface {
	// IsError returns true if the result holds errors
	IsError() bool
	// Errors returns a copy of the errors; ok is false when the result holds a value
	Errors() (errs []Error, ok bool)
	// ValueAsAny returns the held value boxed. It panics on an error result
	ValueAsAny() any
}

// Provider extends View with typed access to the value.
type Provider[T any] interface {
	View
	// Value returns the held value. It panics on an error result
	Value() T
}

var (
	_ View          = Result[int]{}
	_ Provider[int] = Result[int]{}
)
