package rop

import "slices"

// AppendErrors returns an error result holding r's errors followed by errs.
// When r holds a value, the value is dropped and only errs are kept.
// It panics with an *ArgumentError when errs is nil or empty.
func AppendErrors[T any](r Result[T], errs []Error) Result[T] {
	validateErrors(errs, "errors", "cannot append an empty list of errors")

	if !r.IsError() {
		return Result[T]{errors: slices.Clone(errs)}
	}

	all := make([]Error, 0, len(r.errors)+len(errs))
	all = append(all, r.errors...)
	all = append(all, errs...)
	return Result[T]{errors: all}
}

// Combine merges results in order. If any holds errors, the result holds every
// error, in input order. Otherwise it holds the value of the first input and
// the other values are dropped; see CombineAll to keep them.
// It panics with an *ArgumentError when errorOrs is nil or empty.
func Combine[T any](errorOrs []Result[T]) Result[T] {
	validateResults(errorOrs)

	if all := collectErrors(errorOrs); len(all) > 0 {
		return Result[T]{errors: all}
	}
	return errorOrs[0]
}

// CombineAll merges results in order. If any holds errors, the result holds
// every error, in input order. Otherwise it holds every value, in input order.
// It panics with an *ArgumentError when errorOrs is nil or empty.
func CombineAll[T any](errorOrs []Result[T]) Result[[]T] {
	validateResults(errorOrs)

	if all := collectErrors(errorOrs); len(all) > 0 {
		return Result[[]T]{errors: all}
	}

	values := make([]T, len(errorOrs))
	for i, r := range errorOrs {
		values[i] = r.value
	}
	return Result[[]T]{value: values}
}

func validateResults[T any](errorOrs []Result[T]) {
	if errorOrs == nil {
		panic(NewNilArgumentError("errorOrs"))
	}
	if len(errorOrs) == 0 {
		panic(NewEmptyArgumentError("errorOrs", "cannot combine an empty list of results"))
	}
}

func collectErrors[T any](errorOrs []Result[T]) []Error {
	var all []Error
	for _, r := range errorOrs {
		all = append(all, r.errors...)
	}
	return all
}
