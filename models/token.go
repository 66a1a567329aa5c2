package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every session token.
//
// Standard claims (sub, iss, aud, exp, iat, jti) live in the embedded
// [jwt.RegisteredClaims]; Email and Name are private claims describing the
// subject so that clients can render the signed-in user without an extra call.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the e-mail address of the subject.
	Email string `json:"email"`

	// Name is the display name of the subject. Omitted when empty.
	Name string `json:"name,omitempty"`
}

// Token is a freshly issued or successfully parsed session token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`

	// Claims holds the decoded claim set.
	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Principal returns the authenticated identity described by the token.
func (t Token) Principal() Principal {
	return Principal{
		UserID:   t.Claims.Subject,
		Email:    t.Claims.Email,
		FullName: t.Claims.Name,
	}
}

// Principal is the authenticated caller extracted from a verified token.
type Principal struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}
