// Package utils provides small helpers shared across the application:
// typed context keys, HMAC hashing, JSON response writing, JWT generation
// and validation, UUID generation and the HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-vault-tasks/models"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user ID (the token subject).
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey stores the whole parsed [models.Token].
	TokenCtxKey = contextKey("token")
)

// WithToken returns a copy of ctx carrying the parsed token and its subject.
func WithToken(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, TokenCtxKey, token)
	return context.WithValue(ctx, UserIDCtxKey, token.UserID)
}

// GetUserIDFromContext returns the authenticated user ID stored in ctx.
// ok is false when the value is missing, empty or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext returns the parsed token stored in ctx.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
