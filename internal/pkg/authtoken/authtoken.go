// Package authtoken carries the caller's raw bearer token through the
// request context so outbound calls to the HR backend can forward it.
package authtoken

import "context"

type ctxKey struct{}

// WithToken returns a context carrying the raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// FromContext returns the raw bearer token stored by the auth middleware.
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	return token, ok && token != ""
}
