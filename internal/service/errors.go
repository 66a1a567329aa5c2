package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/yobo-blog/internal/validators"
)

// Error kinds. Every error returned by the services matches exactly one of
// them with [errors.Is]; transports map kinds to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Error is a concrete service error of a single kind. Message is safe to
// show to API clients.
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	ErrEmailAlreadyRegistered = newError(ErrConflict, "email is already registered")
	ErrSlugConflict           = newError(ErrConflict, "could not generate a unique slug, try another title")

	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid email or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")
	ErrAuthorNotFound     = newError(ErrUnauthorized, "author account does not exist")

	ErrNotPostAuthor = newError(ErrForbidden, "only the author can modify this post")

	ErrPostNotFound = newError(ErrNotFound, "post not found")
	ErrUserNotFound = newError(ErrNotFound, "user not found")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError lists every rule broken by a request.
// It matches [ErrValidation] with [errors.Is].
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// validationError converts a validator result into a [*ValidationError].
// Errors other than [validators.Violations] are programming errors and are
// returned wrapped as is.
func validationError(err error) error {
	var v validators.Violations
	if errors.As(err, &v) {
		return &ValidationError{Violations: []string(v)}
	}
	return fmt.Errorf("error validating request: %w", err)
}
