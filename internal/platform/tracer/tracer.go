// Package tracer is a small tracing abstraction over OpenTelemetry.
//
// Services depend on the Tracer interface; production wiring uses OTelTracer
// and tests use NoopTracer.
package tracer

import "context"

// Tracer starts spans.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is an in-flight unit of work.
type Span interface {
	// End completes the span, recording err when non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
}

// Attribute is a span key/value pair. Value must be string, bool, int, int64 or float64.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

func Int(key string, value int) Attribute { return Attribute{Key: key, Value: value} }

func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }
