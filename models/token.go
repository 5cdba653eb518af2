package models

import (
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// CapabilityApplication is the capability a token must carry to use the
// vault tasks API.
const CapabilityApplication = "application"

// TokenClaims is the JWT claim set issued to API callers.
//
// Scope holds space-separated capabilities, following the OAuth 2.0
// "scope" claim convention.
type TokenClaims struct {
	jwt.RegisteredClaims

	Scope string `json:"scope,omitempty"`
}

// Capabilities splits the scope claim into individual capabilities.
func (c TokenClaims) Capabilities() []string {
	return strings.Fields(c.Scope)
}

// Token wraps a JWT token with convenience accessors for authorization.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// Capabilities lists what the bearer is allowed to do.
	Capabilities []string `json:"-"`
}

// HasCapability reports whether the token grants capability c.
func (t Token) HasCapability(c string) bool {
	return slices.Contains(t.Capabilities, c)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
