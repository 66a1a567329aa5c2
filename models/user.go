package models

import (
	"strings"
	"time"
)

// User represents a registered account.
//
// It is a plain record: the only capabilities the rest of the application
// relies on are a stable unique identifier and an e-mail address.
// PasswordHash is never serialized.
type User struct {
	// UserID is the opaque, stable identifier of the user (UUIDv7 string).
	// It becomes the "sub" claim of every issued token.
	UserID string `json:"userId"`

	// Email is the address the user registered with, stored as given.
	Email string `json:"email"`

	// NormalizedEmail is the lower-cased, trimmed form of Email.
	// Uniqueness and lookups are enforced on this value.
	NormalizedEmail string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// FullName is the optional display name. Empty means "not provided".
	FullName string `json:"fullName,omitempty"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// ID returns the user identifier.
func (u User) ID() string {
	return u.UserID
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an e-mail address used for
// case-insensitive comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
