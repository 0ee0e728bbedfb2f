package result

import (
	"encoding/json"
	"strings"
)

// Error is an immutable failure descriptor: a message, an optional
// machine-readable code, an optional dotted path to the offending field
// and an optional ordered list of nested detail errors. It is created at
// the point of failure and never mutated afterwards.
type Error struct {
	message string
	code    string
	path    string
	details []*Error
}

// ErrorOption configures an Error during construction.
type ErrorOption func(*Error)

// WithCode sets the machine-readable error code.
func WithCode(code string) ErrorOption {
	return func(e *Error) {
		e.code = code
	}
}

// WithPath sets the dotted field path the error refers to, e.g. "user.email".
func WithPath(path string) ErrorOption {
	return func(e *Error) {
		e.path = path
	}
}

// WithDetails appends nested detail errors in the given order.
// Nil details are rejected.
func WithDetails(details ...*Error) ErrorOption {
	return func(e *Error) {
		for _, d := range details {
			if d == nil {
				panic("result: nil detail error")
			}
			e.details = append(e.details, d)
		}
	}
}

// NewError creates an Error. The message must not be empty or whitespace-only;
// a blank message is a usage error and panics.
func NewError(message string, opts ...ErrorOption) *Error {
	if strings.TrimSpace(message) == "" {
		panic("result: error message must not be blank")
	}
	e := &Error{message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AsError adapts a plain Go error into an *Error. An *Error passes through
// unchanged so codes, paths and details survive round-trips through the
// (T, error) convention.
func AsError(err error) *Error {
	if err == nil {
		panic("result: nil error")
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return NewError(err.Error())
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) Path() string {
	return e.path
}

// Details returns a copy of the nested detail errors in insertion order.
func (e *Error) Details() []*Error {
	if len(e.details) == 0 {
		return nil
	}
	out := make([]*Error, len(e.details))
	copy(out, e.details)
	return out
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.code != "" {
		sb.WriteString(e.code)
		sb.WriteString(": ")
	}
	sb.WriteString(e.message)
	if e.path != "" {
		sb.WriteString(" (")
		sb.WriteString(e.path)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap exposes detail errors to errors.Is / errors.As traversal.
func (e *Error) Unwrap() []error {
	if len(e.details) == 0 {
		return nil
	}
	out := make([]error, len(e.details))
	for i, d := range e.details {
		out[i] = d
	}
	return out
}

// Equal reports structural equality: all fields equal, details compared
// recursively and in order.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.message != other.message || e.code != other.code || e.path != other.path {
		return false
	}
	if len(e.details) != len(other.details) {
		return false
	}
	for i, d := range e.details {
		if !d.Equal(other.details[i]) {
			return false
		}
	}
	return true
}

type errorView struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Path    string   `json:"path,omitempty"`
	Details []*Error `json:"details,omitempty"`
}

// MarshalJSON renders the error as a transport-friendly object.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorView{
		Message: e.message,
		Code:    e.code,
		Path:    e.path,
		Details: e.details,
	})
}
