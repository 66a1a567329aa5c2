// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

const (
	minTokenSignKeyBytes = 32
	maxPasswordBytes     = 72
	minBcryptCost        = 4
	maxBcryptCost        = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every failed group is reported; the returned error matches each violated
// sentinel through [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if len(cfg.App.TokenSignKey) < minTokenSignKeyBytes {
		errs = append(errs, ErrInvalidTokenSignKey)
	}

	switch {
	case cfg.App.TokenIssuer == "":
		errs = append(errs, fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs))
	case cfg.App.TokenAudience == "":
		errs = append(errs, fmt.Errorf("%w: empty token audience", ErrInvalidAppConfigs))
	case cfg.App.TokenExpiryMinutes <= 0:
		errs = append(errs, fmt.Errorf("%w: token expiry must be positive", ErrInvalidAppConfigs))
	case cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost):
		errs = append(errs, fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost))
	}

	if err := cfg.App.Password.validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Blog.MaxSlugAttempts < 1 {
		errs = append(errs, fmt.Errorf("%w: max slug attempts must be at least 1", ErrInvalidBlogConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (p PasswordPolicy) validate() error {
	switch {
	case p.MinLength < 1:
		return fmt.Errorf("%w: min length must be at least 1", ErrInvalidPasswordPolicy)
	case p.MaxLength < p.MinLength:
		return fmt.Errorf("%w: max length %d below min length %d", ErrInvalidPasswordPolicy, p.MaxLength, p.MinLength)
	case p.MaxLength > maxPasswordBytes:
		return fmt.Errorf("%w: max length above %d bytes", ErrInvalidPasswordPolicy, maxPasswordBytes)
	case p.RequiredUniqueChars > p.MaxLength:
		return fmt.Errorf("%w: required unique chars above max length", ErrInvalidPasswordPolicy)
	}
	return nil
}
