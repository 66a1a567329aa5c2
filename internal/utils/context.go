// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, slug generation, HTML sanitizing, HTTP response writing,
// HTTP client initialization, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/yobo-blog/models"
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

// PrincipalCtxKey is the key used to store the authenticated caller in the
// context. Set by the HTTP auth middleware after the bearer token has been
// verified.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithPrincipal(ctx, token.Principal())
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext retrieves the authenticated caller from the context.
//
// Returns ok == false when no principal is stored, the stored value has an
// unexpected type, or its UserID is empty.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || principal.UserID == "" {
		return models.Principal{}, false
	}
	return principal, true
}

// GetUserIDFromContext retrieves the authenticated user identifier from the
// context.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	principal, ok := GetPrincipalFromContext(ctx)
	return principal.UserID, ok
}
