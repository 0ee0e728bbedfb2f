package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the payload of a result that carries no value. Operations with
// nothing to return produce a Result[Unit].
type Unit struct{}

// Result is an immutable success/failure outcome. A success always carries
// a value (which may legitimately be a nil pointer or interface); a failure
// always carries at least one Error, the first being the primary one.
//
// Results are built only through Ok, Done, Fail, FailWith, Failf and the
// combinators; the zero value is not a valid Result.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errs      []*Error
	ok        bool
}

// Ok creates a successful result holding v. The value is not inspected;
// nil is a valid success payload for pointer and interface types.
func Ok[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

// Done creates a successful result with no payload.
func Done() Result[Unit] {
	return Ok(Unit{})
}

// Fail creates a failed result. The primary error must not be nil; extra
// detail errors are appended after it in the given order.
func Fail[T any](err *Error, details ...*Error) Result[T] {
	if err == nil {
		panic("result: Fail requires a non-nil error")
	}
	errs := make([]*Error, 0, 1+len(details))
	errs = append(errs, err)
	for _, d := range details {
		if d == nil {
			panic("result: Fail requires non-nil detail errors")
		}
		errs = append(errs, d)
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		errs:      errs,
	}
}

// FailWith creates a failed result from a message and error options.
// The message must not be blank.
func FailWith[T any](message string, opts ...ErrorOption) Result[T] {
	return Fail[T](NewError(message, opts...))
}

// Failf creates a failed result from a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](NewError(fmt.Sprintf(format, args...)))
}

// IsOk returns true if the result is a success.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsFailure returns true if the result is a failure.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success payload. Calling it on a failure is a usage
// error and panics.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on a failure")
	}
	return r.value
}

// Err returns the primary error. Calling it on a success is a usage error
// and panics.
func (r Result[T]) Err() *Error {
	if r.ok {
		panic("result: Err called on a success")
	}
	if len(r.errs) == 0 {
		panic("result: zero value Result is not valid; use a constructor")
	}
	return r.errs[0]
}

// Errors returns a copy of the ordered error list. Calling it on a success
// is a usage error and panics.
func (r Result[T]) Errors() []*Error {
	if r.ok {
		panic("result: Errors called on a success")
	}
	if len(r.errs) == 0 {
		panic("result: zero value Result is not valid; use a constructor")
	}
	out := make([]*Error, len(r.errs))
	copy(out, r.errs)
	return out
}

// Id returns the unique identifier stamped at construction.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// MapError carries a failure's error list onto a result with a different
// payload type, preserving the id and creation stamp. Calling it on a
// success is a usage error and panics: a success has no errors to carry,
// so a silent no-op would lose the value.
func MapError[In, Out any](r Result[In]) Result[Out] {
	if r.ok {
		panic("result: MapError called on a success")
	}
	return Result[Out]{
		id:        r.id,
		createdAt: r.createdAt,
		errs:      r.errs,
	}
}

// Widen erases the payload type, preserving state, errors and stamps.
// It is used by type-erased pipelines such as the mediator.
func Widen[T any](r Result[T]) Result[any] {
	if !r.ok {
		return MapError[T, any](r)
	}
	return Result[any]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     r.value,
		ok:        true,
	}
}

// Narrow restores a concrete payload type after Widen. A success whose
// value is neither a T nor nil is a usage error and panics; a nil payload
// narrows to the zero value of T.
func Narrow[T any](r Result[any]) Result[T] {
	if !r.ok {
		return MapError[any, T](r)
	}
	out := Result[T]{
		id:        r.id,
		createdAt: r.createdAt,
		ok:        true,
	}
	if r.value == nil {
		return out
	}
	v, ok := r.value.(T)
	if !ok {
		panic(fmt.Sprintf("result: cannot narrow %T to the requested payload type", r.value))
	}
	out.value = v
	return out
}
