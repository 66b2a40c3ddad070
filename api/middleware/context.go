package middleware

import "context"

type contextKey string

const ctxAdminTokenID contextKey = "admin_token_id"

// AdminTokenIDFromContext returns the session token id seeded by AdminAuth,
// or "" when the request is unauthenticated.
func AdminTokenIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminTokenID).(string); ok {
		return v
	}
	return ""
}

// WithAdminTokenID injects the session token id into the context.
func WithAdminTokenID(ctx context.Context, tokenID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAdminTokenID, tokenID)
}
