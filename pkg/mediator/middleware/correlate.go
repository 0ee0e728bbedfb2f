package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/mediator"
	"github.com/ib-77/outcome/pkg/result"
)

type correlationKey struct{}

// Correlate stamps a correlation id into the context before the rest of the
// pipeline runs. An id already present is kept, so an outer Correlate wins.
func Correlate() mediator.Behavior {
	return mediator.BehaviorFunc(func(ctx context.Context, _ any, next mediator.Next) result.Result[any] {
		if _, ok := CorrelationID(ctx); !ok {
			ctx = context.WithValue(ctx, correlationKey{}, uuid.New())
		}
		return next(ctx)
	})
}

// CorrelationID extracts the correlation id stamped by Correlate, if any.
func CorrelationID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(correlationKey{}).(uuid.UUID)
	return id, ok
}
