package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [VerifyPassword] when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// NormalizeBcryptCost clamps cost into the range accepted by bcrypt.
// Zero selects [bcrypt.DefaultCost].
func NormalizeBcryptCost(cost int) int {
	switch {
	case cost == 0:
		return bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	}
	return cost
}

// HashPassword derives a salted bcrypt hash from password.
//
// Every call produces a different hash for the same password because bcrypt
// generates a fresh salt. Passwords longer than 72 bytes are rejected by
// bcrypt and the error is returned wrapped.
//
// Example usage:
//
//	hash, err := utils.HashPassword("Secret123!", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), NormalizeBcryptCost(cost))
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword compares password against a bcrypt hash.
//
// Returns nil on match, [ErrPasswordMismatch] on mismatch, or a wrapped error
// if the hash itself is malformed.
func VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error verifying password: %w", err)
	}
}
