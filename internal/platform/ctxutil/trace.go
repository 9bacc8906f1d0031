// Package ctxutil carries per-request identifiers on the context so the
// request logger can correlate log lines with the X-Trace-Id and
// X-Request-Id response headers.
package ctxutil

import "context"

type traceDataKey struct{}

// TraceData identifies one request. The trace middleware attaches it before
// any handler runs; both IDs are non-empty from then on.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

// GetTraceData returns the attached identifiers, or nil outside a request.
func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}
