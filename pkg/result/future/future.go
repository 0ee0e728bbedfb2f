package future

import (
	"github.com/ib-77/outcome/pkg/result"
)

// Future is a single-completion asynchronous result. It is completed exactly
// once by the goroutine started in Go and read any number of times through
// Await. A panic inside the producing function does not complete the future
// with a failure; it is captured and re-raised on Await, keeping panics
// orthogonal to the result channel.
type Future[T any] struct {
	done     chan struct{}
	res      result.Result[T]
	panicked any
}

// Go starts fn on its own goroutine and returns the future of its result.
func Go[T any](fn func() result.Result[T]) *Future[T] {
	if fn == nil {
		panic("future: Go requires a non-nil fn")
	}
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer func() {
			if p := recover(); p != nil {
				f.panicked = p
			}
			close(f.done)
		}()
		f.res = fn()
	}()
	return f
}

// Resolved returns an already-completed future.
func Resolved[T any](r result.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

// Await blocks until the future completes and returns its result. If the
// producing function panicked, Await re-raises that panic.
func (f *Future[T]) Await() result.Result[T] {
	<-f.done
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.res
}

// Done exposes the completion signal for use in select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
