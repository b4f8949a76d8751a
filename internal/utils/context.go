// Package utils provides general-purpose helpers used across the
// application: type-safe context keys, JSON response writing, JWT token
// generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type instead of
// a plain string prevents collisions with other packages' string keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user's ID is stored
// in the request context by the auth middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user's ID from the
// context. ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
