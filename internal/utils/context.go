// Package utils provides general-purpose helpers used across the
// application: type-safe context keys, JSON response writing, JWT token
// generation and validation, HTTP client construction, and trace identifier
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated account identifier
// in the request context. The auth middleware writes it; handlers read it
// back with GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated account identifier from
// the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  - value is found and has the correct int64 type
//   - ok == false - value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
