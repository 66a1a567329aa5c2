// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":                    "jwt_secret",
		"APP_TOKEN_ISSUER":                      "test_issuer",
		"APP_TOKEN_AUDIENCE":                    "test_audience",
		"APP_TOKEN_EXPIRY_MINUTES":              "15",
		"APP_BCRYPT_COST":                       "12",
		"APP_VERSION":                           "1.2.3",
		"APP_PASSWORD_MIN_LENGTH":               "8",
		"APP_PASSWORD_MAX_LENGTH":               "64",
		"APP_PASSWORD_REQUIRE_DIGIT":            "false",
		"APP_PASSWORD_REQUIRE_NON_ALPHANUMERIC": "true",
		"APP_PASSWORD_REQUIRED_UNIQUE_CHARS":    "3",

		"BLOG_MAX_SLUG_ATTEMPTS": "7",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_GRPC_ADDRESS":     "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:blog.db",

		"LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "test_audience", cfg.App.TokenAudience)
	assert.Equal(t, 15, cfg.App.TokenExpiryMinutes)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, 8, cfg.App.Password.MinLength)
	assert.Equal(t, 64, cfg.App.Password.MaxLength)
	require.NotNil(t, cfg.App.Password.RequireDigit)
	assert.False(t, *cfg.App.Password.RequireDigit)
	require.NotNil(t, cfg.App.Password.RequireNonAlphanumeric)
	assert.True(t, *cfg.App.Password.RequireNonAlphanumeric)
	assert.Nil(t, cfg.App.Password.RequireUppercase)
	assert.Equal(t, 3, cfg.App.Password.RequiredUniqueChars)

	assert.Equal(t, 7, cfg.Blog.MaxSlugAttempts)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:blog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenExpiryMinutes)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "SERVER_REQUEST_TIMEOUT", val: "not-a-duration"},
		{name: "int", key: "APP_BCRYPT_COST", val: "ten"},
		{name: "bool", key: "APP_PASSWORD_REQUIRE_DIGIT", val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
