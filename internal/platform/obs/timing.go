package obs

import (
	"context"
	"time"

	"scenario-validation-service/internal/platform/logger"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored on the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores a request id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of an operation, tagging the request id and any
// error the operation finished with. Use as:
//
//	defer obs.Time(ctx, "services.SolveScenario")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}
		if errp != nil && *errp != nil {
			logger.Get().Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		logger.Get().Debug("operation complete", fields...)
	}
}
