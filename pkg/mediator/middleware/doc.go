// Package middleware ships reusable mediator behaviors: Correlate stamps a
// correlation id into the context, Logging emits structured zap records for
// every request including a serialized payload with a string fallback.
package middleware
