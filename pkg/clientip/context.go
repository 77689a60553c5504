package clientip

import "context"

type contextKey struct{}

// WithContext stores the resolved client host in ctx.
func WithContext(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, contextKey{}, host)
}

// FromContext returns the client host stored by WithContext, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	host, _ := ctx.Value(contextKey{}).(string)
	return host
}
