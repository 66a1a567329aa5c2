// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the blog API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Violations: the error returned when one or more rules are broken. Every
//     broken rule is reported, not only the first one.
//
// Usage patterns:
//  1. Inject Validator implementations into services.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Unwrap the result with errors.As into Violations to render each message.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
