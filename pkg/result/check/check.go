package check

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/outcome/pkg/result"
)

const (
	// DefaultMessage is the aggregate error message used when Validate is
	// not given one.
	DefaultMessage = "validation failed"
	// DefaultCode is the aggregate error code used when Validate is not
	// given one.
	DefaultCode = "validation"
)

// Predicate evaluates a rule against the subject value. The boolean reports
// whether the rule passed; a non-nil error aborts validation entirely and is
// surfaced to the caller as an infrastructure error, not a domain failure.
type Predicate[T any] func(ctx context.Context, v T) (bool, error)

// Rule pairs a predicate with the error template materialized when the
// predicate reports false.
type Rule[T any] struct {
	Check   Predicate[T]
	Message string
	Code    string
	Path    string
}

func (r Rule[T]) failure() *result.Error {
	opts := make([]result.ErrorOption, 0, 2)
	if r.Code != "" {
		opts = append(opts, result.WithCode(r.Code))
	}
	if r.Path != "" {
		opts = append(opts, result.WithPath(r.Path))
	}
	return result.NewError(r.Message, opts...)
}

// RuleOption configures the rule appended by Ensure.
type RuleOption func(*ruleTemplate)

type ruleTemplate struct {
	code string
	path string
}

// WithCode sets the rule failure's machine-readable code.
func WithCode(code string) RuleOption {
	return func(t *ruleTemplate) {
		t.code = code
	}
}

// WithPath sets the dotted field path the rule failure refers to.
func WithPath(path string) RuleOption {
	return func(t *ruleTemplate) {
		t.path = path
	}
}

// Chain accumulates named rules against the value of a subject result and
// folds them into either the untouched subject or one aggregated failure.
// Rules are appended on a single goroutine before validation; each Validate
// call re-evaluates every rule, nothing is memoized.
type Chain[T any] struct {
	subject result.Result[T]
	rules   []Rule[T]
}

// Of starts a chain over an existing subject result.
func Of[T any](subject result.Result[T]) *Chain[T] {
	return &Chain[T]{subject: subject}
}

// Value starts a chain over a successful subject holding v.
func Value[T any](v T) *Chain[T] {
	return Of(result.Ok(v))
}

// Subject returns the subject result the chain was built from.
func (c *Chain[T]) Subject() result.Result[T] {
	return c.subject
}

// And appends a rule. Appending to an already-failed subject is legal; the
// rule is recorded but will never be evaluated.
func (c *Chain[T]) And(rule Rule[T]) *Chain[T] {
	if rule.Check == nil {
		panic("check: rule requires a non-nil predicate")
	}
	if strings.TrimSpace(rule.Message) == "" {
		panic("check: rule requires a non-blank message")
	}
	c.rules = append(c.rules, rule)
	return c
}

// Ensure appends a rule from a boolean predicate and an error template.
func (c *Chain[T]) Ensure(pred func(ctx context.Context, v T) bool, message string, opts ...RuleOption) *Chain[T] {
	if pred == nil {
		panic("check: Ensure requires a non-nil predicate")
	}
	var t ruleTemplate
	for _, opt := range opts {
		opt(&t)
	}
	return c.And(Rule[T]{
		Check: func(ctx context.Context, v T) (bool, error) {
			return pred(ctx, v), nil
		},
		Message: message,
		Code:    t.code,
		Path:    t.path,
	})
}

// ValidateOption configures the aggregate failure produced by Validate and
// ValidateAll.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	message string
	code    string
}

// WithMessage overrides the aggregate failure message.
func WithMessage(message string) ValidateOption {
	return func(o *validateOptions) {
		o.message = message
	}
}

// WithFailureCode overrides the aggregate failure code.
func WithFailureCode(code string) ValidateOption {
	return func(o *validateOptions) {
		o.code = code
	}
}

// Validate evaluates the rules sequentially, in append order. A failed
// subject is returned untouched without evaluating anything; so is a subject
// with no recorded rules or none failing. Any failing rules are folded, in
// append order, into a single aggregate failure. A predicate error aborts
// evaluation and is returned alongside the subject.
func (c *Chain[T]) Validate(ctx context.Context, opts ...ValidateOption) (result.Result[T], error) {
	if c.subject.IsFailure() || len(c.rules) == 0 {
		return c.subject, nil
	}

	var failures []*result.Error
	for _, rule := range c.rules {
		ok, err := rule.Check(ctx, c.subject.Value())
		if err != nil {
			return c.subject, err
		}
		if !ok {
			failures = append(failures, rule.failure())
		}
	}
	return c.fold(failures, opts)
}

// ValidateAll evaluates every rule concurrently and joins before reporting.
// Evaluation order is unspecified, but failures are always reported in the
// order the rules were appended, never in completion order. The first
// predicate error cancels the remaining evaluations and is returned.
func (c *Chain[T]) ValidateAll(ctx context.Context, opts ...ValidateOption) (result.Result[T], error) {
	if c.subject.IsFailure() || len(c.rules) == 0 {
		return c.subject, nil
	}

	passed := make([]bool, len(c.rules))
	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range c.rules {
		i, rule := i, rule
		g.Go(func() error {
			ok, err := rule.Check(gctx, c.subject.Value())
			if err != nil {
				return err
			}
			passed[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.subject, err
	}

	var failures []*result.Error
	for i, rule := range c.rules {
		if !passed[i] {
			failures = append(failures, rule.failure())
		}
	}
	return c.fold(failures, opts)
}

func (c *Chain[T]) fold(failures []*result.Error, opts []ValidateOption) (result.Result[T], error) {
	if len(failures) == 0 {
		return c.subject, nil
	}
	o := validateOptions{message: DefaultMessage, code: DefaultCode}
	for _, opt := range opts {
		opt(&o)
	}
	agg := result.NewError(o.message, result.WithCode(o.code), result.WithDetails(failures...))
	return result.Fail[T](agg), nil
}
