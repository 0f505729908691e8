// Package utils holds small helpers shared by the diary server and client:
// request context values, JSON responses, the REST client, tokens and ids.
package utils

import "context"

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFrom returns the id stored by WithUserID. ok is false when there is
// none or it is empty.
func UserIDFrom(ctx context.Context) (userID string, ok bool) {
	userID, _ = ctx.Value(userIDKey{}).(string)
	return userID, userID != ""
}
