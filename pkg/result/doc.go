// Package result provides an immutable success/failure outcome type and the
// combinators to thread it through computations without unwrapping errors
// into panics.
//
// A Result[T] is either a success holding a value of T or a failure holding
// one or more Error values. Result[Unit] covers operations with nothing to
// return. Two channels are deliberately kept separate: domain failures are
// ordinary returned values, while usage errors (nil callbacks, blank
// messages, reading Value on a failure) panic immediately.
//
// Key operations:
//   - Ok/Done/Fail/FailWith/Failf: construct results
//   - Bind: switch to a new Result via a function, short-circuiting failures
//   - Map: transform the success value (In -> Out)
//   - Match/MatchOk: collapse into a plain value via handlers
//   - Recover: replace a failure with a fallback-produced success
//   - Try: call a function (Out, error) and convert the error to a failure
//   - Tap/TapError: side effects that leave the result unchanged
//   - MapError: carry a failure's errors across payload types
//   - Collect: aggregate many results with lazy, short-circuit-aware visits
//
// Asynchronous duals live in package future, rule-based validation in
// package check, and context-aware fluent chaining in package chain.
package result
