package llm

import "context"

type userKey struct{}

// WithUser tags the context with the id of the learner the request is
// served for, so the logging decorator can attribute the call.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFrom returns the learner id stored by WithUser, or "".
func UserFrom(ctx context.Context) string {
	if v, ok := ctx.Value(userKey{}).(string); ok {
		return v
	}
	return ""
}
