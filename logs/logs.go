package logs

import (
	"context"
)

type contextKey int

// ContextKeyTraceID is the key under which the trace id of an
// operation is kept in a context.Context
const ContextKeyTraceID contextKey = iota

// Fields are the key value pairs attached to a log entry
type Fields interface {
	// Add a new field with key and value
	Add(key string, value interface{})
}

// Loggable is implemented by any type that knows how to
// describe itself in a log entry
type Loggable interface {
	// Log adds to fields the description of the Loggable
	Log(fields Fields)
}

// MapFields is a plain map implementation of Fields that can
// be passed to a Logger as Loggable
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the interface used by all the components to report
// what they are doing. Every entry is tied to a context so that
// the trace id of the operation ends up in the entry
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// WithTraceID returns a copy of ctx that carries the trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id kept in ctx, or 0 if
// there is none
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
