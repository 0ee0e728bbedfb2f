package future

import (
	"github.com/ib-77/outcome/pkg/result"
)

// Every combinator validates its functional argument synchronously, before
// any goroutine is started, so a nil callback panics in the caller.

// Start bridges a plain result into an asynchronous continuation. A failed
// input resolves immediately with the carried errors and next never runs.
func Start[In, Out any](r result.Result[In], next func(In) *Future[Out]) *Future[Out] {
	if next == nil {
		panic("future: Start requires a non-nil next")
	}
	if r.IsFailure() {
		return Resolved(result.MapError[In, Out](r))
	}
	return next(r.Value())
}

// Bind awaits f and, on success, continues with the future produced by next.
// A failure short-circuits and next never runs.
func Bind[In, Out any](f *Future[In], next func(In) *Future[Out]) *Future[Out] {
	if next == nil {
		panic("future: Bind requires a non-nil next")
	}
	return Go(func() result.Result[Out] {
		r := f.Await()
		if r.IsFailure() {
			return result.MapError[In, Out](r)
		}
		return next(r.Value()).Await()
	})
}

// Then awaits f and, on success, continues with the result returned by next.
func Then[In, Out any](f *Future[In], next func(In) result.Result[Out]) *Future[Out] {
	if next == nil {
		panic("future: Then requires a non-nil next")
	}
	return Go(func() result.Result[Out] {
		return result.Bind(f.Await(), next)
	})
}

// Map awaits f and applies a pure transform to the success value.
func Map[In, Out any](f *Future[In], transform func(In) Out) *Future[Out] {
	if transform == nil {
		panic("future: Map requires a non-nil transform")
	}
	return Go(func() result.Result[Out] {
		return result.Map(f.Await(), transform)
	})
}

// Tap awaits f, runs action on success and passes the result through
// unchanged.
func Tap[T any](f *Future[T], action func(T)) *Future[T] {
	if action == nil {
		panic("future: Tap requires a non-nil action")
	}
	return Go(func() result.Result[T] {
		return f.Await().Tap(action)
	})
}

// TapError awaits f, runs action on failure and passes the result through
// unchanged.
func TapError[T any](f *Future[T], action func(*result.Error)) *Future[T] {
	if action == nil {
		panic("future: TapError requires a non-nil action")
	}
	return Go(func() result.Result[T] {
		return f.Await().TapError(action)
	})
}

// Recover awaits f and replaces a failure with a fallback-produced success.
func Recover[T any](f *Future[T], fallback func(*result.Error) T) *Future[T] {
	if fallback == nil {
		panic("future: Recover requires a non-nil fallback")
	}
	return Go(func() result.Result[T] {
		return result.Recover(f.Await(), fallback)
	})
}

// Match awaits f and collapses the result into a plain value through one of
// two arms. It blocks the caller until completion.
func Match[In, Out any](f *Future[In], onOk func(In) Out, onFail func(*result.Error) Out) Out {
	if onOk == nil {
		panic("future: Match requires a non-nil onOk")
	}
	if onFail == nil {
		panic("future: Match requires a non-nil onFail")
	}
	return result.Match(f.Await(), onOk, onFail)
}
