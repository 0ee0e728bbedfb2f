package result

// Bind invokes next with the success value and returns its result. A failure
// short-circuits: next never runs and the original errors flow through onto
// the output payload type.
func Bind[In, Out any](r Result[In], next func(In) Result[Out]) Result[Out] {
	if next == nil {
		panic("result: Bind requires a non-nil next")
	}
	if r.IsFailure() {
		return MapError[In, Out](r)
	}
	return next(r.value)
}

// Map applies a pure transform to the success value and wraps it Ok.
// Failures flow through untouched.
func Map[In, Out any](r Result[In], transform func(In) Out) Result[Out] {
	if transform == nil {
		panic("result: Map requires a non-nil transform")
	}
	if r.IsFailure() {
		return MapError[In, Out](r)
	}
	return Ok(transform(r.value))
}

// Match collapses the result into a plain value through one of two arms.
func Match[In, Out any](r Result[In], onOk func(In) Out, onFail func(*Error) Out) Out {
	if onOk == nil {
		panic("result: Match requires a non-nil onOk")
	}
	if onFail == nil {
		panic("result: Match requires a non-nil onFail")
	}
	if r.IsFailure() {
		return onFail(r.Err())
	}
	return onOk(r.value)
}

// MatchOk collapses the result through the success arm only; failures yield
// the zero value of Out.
func MatchOk[In, Out any](r Result[In], onOk func(In) Out) Out {
	if onOk == nil {
		panic("result: MatchOk requires a non-nil onOk")
	}
	if r.IsFailure() {
		var zero Out
		return zero
	}
	return onOk(r.value)
}

// Recover turns a failure into a success by invoking fallback with the
// primary error and wrapping the produced value Ok. A success is untouched
// and fallback never runs.
func Recover[T any](r Result[T], fallback func(*Error) T) Result[T] {
	if fallback == nil {
		panic("result: Recover requires a non-nil fallback")
	}
	if r.IsOk() {
		return r
	}
	return Ok(fallback(r.Err()))
}

// Try bridges a conventional (Out, error) function into the result channel:
// a nil error wraps the value Ok, a non-nil error becomes a failure.
// A failed input short-circuits and onTry never runs.
func Try[In, Out any](r Result[In], onTry func(In) (Out, error)) Result[Out] {
	if onTry == nil {
		panic("result: Try requires a non-nil onTry")
	}
	if r.IsFailure() {
		return MapError[In, Out](r)
	}
	out, err := onTry(r.value)
	if err != nil {
		return Fail[Out](AsError(err))
	}
	return Ok(out)
}

// Tap invokes action with the success value and returns the result
// unchanged. On a failure the action never runs.
func (r Result[T]) Tap(action func(T)) Result[T] {
	if action == nil {
		panic("result: Tap requires a non-nil action")
	}
	if r.IsOk() {
		action(r.value)
	}
	return r
}

// TapError invokes action with the primary error and returns the result
// unchanged. On a success the action never runs.
func (r Result[T]) TapError(action func(*Error)) Result[T] {
	if action == nil {
		panic("result: TapError requires a non-nil action")
	}
	if r.IsFailure() {
		action(r.Err())
	}
	return r
}
