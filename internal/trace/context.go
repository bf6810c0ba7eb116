package trace

import "context"

type ctxKey struct{}

// WithTracer stores a tracer in the context.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the context's tracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok && t != nil {
		return t
	}
	return Nop
}
