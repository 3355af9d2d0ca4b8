// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous chains using solo primitives.
//
// A Chain carries a context that is handed to every step, so request-scoped
// values reach the callbacks without closures. Steps that change the value
// type are functions (Then, ThenResult, Match); steps that keep it are
// methods.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenResult: transform the value, short-circuit on errors
// - ThenDo/ElseDo: side effects without changing the result
// - Else/ElseFunc/ElseError: recover from or replace errors
// - FailIf: fail on a predicate
// - Switch/Match: collapse the chain
package chain
