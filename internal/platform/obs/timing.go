package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// WithRequestID stores a request id for loggers and timers downstream.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, reqID)
}

// Logger returns the default logger tagged with the request id from ctx.
func Logger(ctx context.Context) *slog.Logger {
	if reqID := RequestID(ctx); reqID != "" {
		return slog.Default().With(string(RequestIDKey), reqID)
	}
	return slog.Default()
}

// Time starts a timer for op. Call the returned func with a pointer to the
// operation's error to log duration and outcome at debug level, or at warn
// level on failure.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		log := Logger(ctx)

		if errp != nil && *errp != nil {
			log.WarnContext(ctx, "operation failed", "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		log.DebugContext(ctx, "operation finished", "op", name, "dur_ms", dur.Milliseconds())
	}
}
