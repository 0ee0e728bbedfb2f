package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/result"
)

// Chain wraps a result.Result with a context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

// Start creates a new chain from a result.
func Start[T any](ctx context.Context, res result.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) *Chain[T] {
	return Start(ctx, result.Ok(v))
}

// Result returns the underlying result.
func (c *Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then chains a function that already returns a result of the same type.
func (c *Chain[T]) Then(next func(context.Context, T) result.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: result.Bind(c.res, func(v T) result.Result[T] {
			return next(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (T, error), like repo calls.
func (c *Chain[T]) ThenTry(try func(context.Context, T) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: result.Try(c.res, func(v T) (T, error) {
			return try(c.ctx, v)
		}),
	}
}

// Map transforms the successful value without changing its type.
func (c *Chain[T]) Map(transform func(context.Context, T) T) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v T) T {
			return transform(c.ctx, v)
		}),
	}
}

// Tap performs a side effect on success without changing the result.
func (c *Chain[T]) Tap(action func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: c.res.Tap(func(v T) {
			action(c.ctx, v)
		}),
	}
}

// TapError performs a side effect on failure without changing the result.
func (c *Chain[T]) TapError(action func(context.Context, *result.Error)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: c.res.TapError(func(e *result.Error) {
			action(c.ctx, e)
		}),
	}
}

// Recover replaces a failure with a fallback-produced success.
func (c *Chain[T]) Recover(fallback func(context.Context, *result.Error) T) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: result.Recover(c.res, func(e *result.Error) T {
			return fallback(c.ctx, e)
		}),
	}
}

// To chains a function that switches the chain to a new payload type.
func To[T, U any](c *Chain[T], next func(context.Context, T) result.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Bind(c.res, func(v T) result.Result[U] {
			return next(c.ctx, v)
		}),
	}
}

// ToTry chains a function that returns (U, error), switching the payload type.
func ToTry[T, U any](c *Chain[T], try func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Try(c.res, func(v T) (U, error) {
			return try(c.ctx, v)
		}),
	}
}

// MapTo transforms the successful value to a new type.
func MapTo[T, U any](c *Chain[T], transform func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v T) U {
			return transform(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value via success/failure handlers.
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onFail func(context.Context, *result.Error) U) U {
	return result.Match(c.res,
		func(v T) U {
			return onOk(c.ctx, v)
		},
		func(e *result.Error) U {
			return onFail(c.ctx, e)
		})
}
