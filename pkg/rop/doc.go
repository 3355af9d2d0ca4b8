// Package rop defines Result[T], a value-or-errors type for propagating
// domain errors as data, together with the Error value it carries.
//
// A Result holds either a value or a non-empty, ordered list of Errors.
// Domain failures (validation, not found, conflicts, ...) travel inside the
// result; programmer mistakes such as building a result from an empty error
// list, or reading Value from an error result, panic immediately with an
// *ArgumentError or *StateError.
//
// Highlights:
// - From/FromError/FromErrors/Build: construct Result[T]
// - Failure/Validation/NotFound/.../Custom: construct Error
// - AppendErrors/Combine/CombineAll: merge several results
// - View: untyped read-only access for logging and serialization
//
// Combinators live in package solo (synchronous) and await (asynchronous).
package rop
