package auth

import "context"

type contextKey string

const identityKey contextKey = "admin_identity"

// WithIdentity stores the resolved admin identity in the context.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the admin identity resolved for this
// request. It is set fresh per request by the admin middleware; there is
// no process-global caller state.
func IdentityFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(identityKey).(string)
	return v, ok
}
