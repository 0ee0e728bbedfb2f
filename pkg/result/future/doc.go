// Package future provides the asynchronous duals of the result combinators
// over a single-completion Future[T] promise.
//
// Shapes:
//   - Start: result in, future out
//   - Then/Map/Tap/TapError/Recover: future in, plain function out
//   - Bind: future in, future out
//   - Match: future in, collapsed plain value out (blocks)
//
// Futures add no suspension points of their own; each combinator suspends
// only where the wrapped callback does. Panics from callbacks are captured
// and re-raised on Await rather than converted into failures.
package future
