// Package context carries per call values for outgoing calls to remote
// intmap servers.
package context

import (
	"context"

	"github.com/viant/mcp/client/auth/transport"
)

// WithAuthToken attaches a bearer token used by remote tool calls.
func WithAuthToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, transport.ContextAuthTokenKey, token)
}

// AuthToken returns the bearer token attached to ctx.
func AuthToken(ctx context.Context) (string, bool) {
	ret := ctx.Value(transport.ContextAuthTokenKey)
	if ret == nil {
		return "", false
	}
	token, ok := ret.(string)
	return token, ok
}
