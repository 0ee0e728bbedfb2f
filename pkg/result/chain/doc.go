// Package chain provides a fluent wrapper around Result[T] for building
// synchronous, context-aware pipelines on top of the result combinators.
//
// Key operations:
// - Start/FromValue: begin a chain from a result or value
// - Then/ThenTry/Map: same-type composition steps
// - To/ToTry/MapTo: steps that switch the payload type
// - Tap/TapError: side effects that leave the result unchanged
// - Recover: replace a failure with a fallback value
// - Finally: collapse the chain into a final value via handlers
package chain
