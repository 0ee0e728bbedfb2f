package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/ib-77/outcome/pkg/result"
)

// Registry is the service locator consumed by the mediator: it maps a
// request type to exactly one handler factory and zero or more
// request-specific behavior factories. Factories, not instances, are
// registered so every Send resolves fresh instances.
//
// Registration is expected to finish before the first Send; lookups are
// guarded so concurrent Sends are safe.
type Registry struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]any
	behaviors map[reflect.Type][]func() Behavior
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:  make(map[reflect.Type]any),
		behaviors: make(map[reflect.Type][]func() Behavior),
	}
}

func requestType[Req any]() reflect.Type {
	return reflect.TypeOf((*Req)(nil)).Elem()
}

// Register binds a handler factory to the request type Req. Registering a
// second handler for the same request type is a configuration error and
// panics.
func Register[Req any, T any](reg *Registry, factory func() Handler[Req, T]) {
	if factory == nil {
		panic("mediator: nil handler factory")
	}
	reqType := requestType[Req]()

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.handlers[reqType]; exists {
		panic(fmt.Sprintf("mediator: handler already registered for %s", reqType))
	}
	reg.handlers[reqType] = factory
}

// RegisterFunc binds a plain handler function to the request type Req.
func RegisterFunc[Req any, T any](reg *Registry, fn func(ctx context.Context, req Req) result.Result[T]) {
	if fn == nil {
		panic("mediator: nil handler func")
	}
	Register(reg, func() Handler[Req, T] {
		return HandlerFunc[Req, T](fn)
	})
}

// RegisterBehavior appends a request-specific behavior factory for Req.
// Behaviors run in registration order, after the global ones.
func RegisterBehavior[Req any](reg *Registry, factory func() Behavior) {
	if factory == nil {
		panic("mediator: nil behavior factory")
	}
	reqType := requestType[Req]()

	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.behaviors[reqType] = append(reg.behaviors[reqType], factory)
}

// resolve returns the handler factory (nil when absent) and a snapshot of
// the request-specific behavior factories for reqType.
func (r *Registry) resolve(reqType reflect.Type) (any, []func() Behavior) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory := r.handlers[reqType]
	specifics := r.behaviors[reqType]
	if len(specifics) == 0 {
		return factory, nil
	}
	out := make([]func() Behavior, len(specifics))
	copy(out, specifics)
	return factory, out
}
