// Package mediator implements an in-process request dispatcher: one handler
// and any number of wrapping behaviors per request type, composed into a
// nested delegate chain and invoked once per Send.
//
// Behaviors run outermost-to-innermost in the order: globals (mediator
// construction order), then request-specific ones (registration order),
// then the handler. A behavior that never calls its continuation
// short-circuits the pipeline and its own result becomes the final outcome.
//
// Handlers and behaviors are resolved from factories on every Send, so no
// instance is ever shared between two calls. A missing handler is a
// configuration error returned as a plain error, never as a failed result;
// panics thrown by handlers or behaviors propagate to the caller untouched.
package mediator
