package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/mediator"
	"github.com/ib-77/outcome/pkg/result"
)

// Logging logs every request flowing through the pipeline: the request type,
// correlation id when present, a structured rendering of the payload, the
// elapsed time and the outcome. A panic from the rest of the pipeline is
// logged and re-raised, never swallowed.
func Logging(log *zap.Logger) mediator.Behavior {
	if log == nil {
		log = zap.NewNop()
	}
	return mediator.BehaviorFunc(func(ctx context.Context, req any, next mediator.Next) result.Result[any] {
		fields := []zap.Field{
			zap.String("request_type", fmt.Sprintf("%T", req)),
			payloadField(log, req),
		}
		if id, ok := CorrelationID(ctx); ok {
			fields = append(fields, zap.Stringer("correlation_id", id))
		}

		log.Info("handling request", fields...)
		start := time.Now()
		defer func() {
			if p := recover(); p != nil {
				log.Error("request panicked",
					append(fields, zap.Any("panic", p), zap.Duration("elapsed", time.Since(start)))...)
				panic(p)
			}
		}()

		res := next(ctx)

		elapsed := zap.Duration("elapsed", time.Since(start))
		if res.IsFailure() {
			log.Warn("request failed",
				append(fields, elapsed, zap.String("error", res.Err().Error()))...)
		} else {
			log.Info("request handled", append(fields, elapsed)...)
		}
		return res
	})
}

// payloadField renders the request payload. It attempts a structured JSON
// serialization first; on any marshalling error it logs a warning and falls
// back to the value's string representation, leaving the pipeline unaffected.
func payloadField(log *zap.Logger, req any) zap.Field {
	data, err := json.Marshal(req)
	if err != nil {
		log.Warn("could not serialize request payload", zap.Error(err))
		return zap.String("request", fmt.Sprintf("%+v", req))
	}
	return zap.ByteString("request", data)
}
