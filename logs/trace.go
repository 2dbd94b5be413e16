package logs

import (
	"context"
	"sync/atomic"
)

type contextKey string

// ContextKeyTraceID is the key under which the trace id of
// an operation is stored in its context
const ContextKeyTraceID contextKey = "trace_id"

var lastTraceID int64

// NewTraceID returns a trace id that has not been returned
// before by this process
func NewTraceID() int64 {
	return atomic.AddInt64(&lastTraceID, 1)
}

// WithTraceID returns a copy of ctx that carries the trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id carried by ctx or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
