// Package utils holds helpers shared by the client and the server: the
// authenticated user in a request context, JSON responses, the resty client
// constructor, JWT handling, token digests and ids.
package utils

import "context"

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by [WithUserID]. ok is false when
// the request was not authenticated.
func UserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}
