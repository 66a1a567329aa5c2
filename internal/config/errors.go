package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTokenSignKey indicates a missing or too short token signing key.
	ErrInvalidTokenSignKey = errors.New("token sign key must be at least 32 bytes")
	// ErrInvalidAppConfigs indicates invalid token issuer, audience, expiry
	// or bcrypt settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPasswordPolicy indicates contradictory password policy limits.
	ErrInvalidPasswordPolicy = errors.New("invalid password policy")
	// ErrInvalidBlogConfigs indicates invalid content-service settings.
	ErrInvalidBlogConfigs = errors.New("invalid blog configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates no listen address or a non-positive
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
