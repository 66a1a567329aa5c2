package config

import (
	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// MarshalZerologObject writes the configuration into a log event with the
// token signing key and the DSN redacted.
//
// Example usage:
//
//	log.Info().Object("config", cfg).Msg("configuration loaded")
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("app", zerolog.Dict().
		Str("token_sign_key", redactedOrEmpty(cfg.App.TokenSignKey)).
		Str("token_issuer", cfg.App.TokenIssuer).
		Str("token_audience", cfg.App.TokenAudience).
		Int("token_expiry_minutes", cfg.App.TokenExpiryMinutes).
		Int("bcrypt_cost", cfg.App.BcryptCost).
		Int("password_min_length", cfg.App.Password.MinLength).
		Str("version", cfg.App.Version))
	e.Dict("blog", zerolog.Dict().
		Int("max_slug_attempts", cfg.Blog.MaxSlugAttempts))
	e.Dict("storage", zerolog.Dict().
		Str("driver", cfg.Storage.DB.Driver).
		Str("dsn", redactedOrEmpty(cfg.Storage.DB.DSN)))
	e.Dict("server", zerolog.Dict().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout))
	e.Str("log_level", cfg.Log.Level)
}

func redactedOrEmpty(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
