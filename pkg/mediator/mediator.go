package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/result"
)

// Handler is the terminal capability of a pipeline: given a request, produce
// the final result.
type Handler[Req any, T any] interface {
	Handle(ctx context.Context, req Req) result.Result[T]
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc[Req any, T any] func(ctx context.Context, req Req) result.Result[T]

// Handle implements the Handler interface.
func (f HandlerFunc[Req, T]) Handle(ctx context.Context, req Req) result.Result[T] {
	return f(ctx, req)
}

// Next is the continuation a behavior may invoke to run the rest of the
// pipeline. Skipping it short-circuits: inner behaviors and the handler
// never run and the behavior's own result becomes the final outcome.
type Next func(ctx context.Context) result.Result[any]

// Behavior is a pipeline stage wrapping a continuation. Behaviors see the
// request type-erased; the pipeline narrows the payload back at the end.
type Behavior interface {
	Handle(ctx context.Context, req any, next Next) result.Result[any]
}

// BehaviorFunc adapts a plain function to the Behavior interface.
type BehaviorFunc func(ctx context.Context, req any, next Next) result.Result[any]

// Handle implements the Behavior interface.
func (f BehaviorFunc) Handle(ctx context.Context, req any, next Next) result.Result[any] {
	return f(ctx, req, next)
}

// ErrNoHandler reports that no handler is registered for a request type.
// It is a configuration error, surfaced as a plain error from Send because
// there is no pipeline to produce a result.
var ErrNoHandler = errors.New("mediator: no handler registered")

// ErrHandlerMismatch reports that the registered handler for a request type
// does not produce the payload type the caller asked for.
var ErrHandlerMismatch = errors.New("mediator: handler payload type mismatch")

// Mediator composes registered behaviors and handlers into per-request
// pipelines. It holds no mutable state between calls; every Send resolves
// fresh behavior and handler instances from their factories.
type Mediator struct {
	reg     *Registry
	globals []func() Behavior
}

// Option configures a Mediator.
type Option func(*Mediator)

// WithBehaviors appends global behavior factories, applied to every request
// type in the given order, outermost first.
func WithBehaviors(factories ...func() Behavior) Option {
	return func(m *Mediator) {
		for _, f := range factories {
			if f == nil {
				panic("mediator: nil behavior factory")
			}
			m.globals = append(m.globals, f)
		}
	}
}

// New creates a Mediator resolving handlers and request-specific behaviors
// from reg.
func New(reg *Registry, opts ...Option) *Mediator {
	if reg == nil {
		panic("mediator: nil registry")
	}
	m := &Mediator{reg: reg}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send runs req through its pipeline: global behaviors in construction
// order, then request-specific behaviors in registration order, then the
// handler, composed right-to-left and invoked once. A missing or mismatched
// handler and a pre-cancelled context return a plain error with a zero
// result. Panics from behaviors or the handler are not caught. Domain
// failures come back as ordinary failed results.
func Send[Req any, T any](ctx context.Context, m *Mediator, req Req) (result.Result[T], error) {
	var zero result.Result[T]

	reqType := requestType[Req]()
	factory, specifics := m.reg.resolve(reqType)
	if factory == nil {
		return zero, fmt.Errorf("%w for %s", ErrNoHandler, reqType)
	}
	typed, ok := factory.(func() Handler[Req, T])
	if !ok {
		return zero, fmt.Errorf("%w: handler for %s does not produce %s",
			ErrHandlerMismatch, reqType, reflect.TypeOf((*T)(nil)).Elem())
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	handler := typed()
	var invoke Next = func(ctx context.Context) result.Result[any] {
		return result.Widen(handler.Handle(ctx, req))
	}

	factories := make([]func() Behavior, 0, len(m.globals)+len(specifics))
	factories = append(factories, m.globals...)
	factories = append(factories, specifics...)
	for i := len(factories) - 1; i >= 0; i-- {
		behavior := factories[i]()
		inner := invoke
		invoke = func(ctx context.Context) result.Result[any] {
			return behavior.Handle(ctx, req, inner)
		}
	}

	return result.Narrow[T](invoke(ctx)), nil
}

// Do sends a request whose handler produces no payload.
func Do[Req any](ctx context.Context, m *Mediator, req Req) (result.Result[result.Unit], error) {
	return Send[Req, result.Unit](ctx, m, req)
}
