// Package solo contains synchronous combinators over a single
// rop.Result[T]. None of them mutates its input; each returns a new result
// or, for Switch and Match, leaves the result world.
//
// Highlights:
// - Then/ThenResult/ThenDo: act on the value, short-circuit on errors
// - Else/ElseFunc/ElseError/ElseErrorFunc/ElseErrorsFunc: act on errors
// - ElseDo: side effect on errors
// - FailIf: turn a value into an error when a predicate holds
// - Switch/SwitchFirst/Match/MatchFirst: terminal handlers
package solo
