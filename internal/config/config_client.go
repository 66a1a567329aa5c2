package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ErrInvalidClientConfigs indicates an empty server URL or a negative timeout.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig holds settings of the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of the blog API, e.g. "http://localhost:8080".
	// Env: YOBO_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Token is the bearer token attached to authenticated calls.
	// Env: YOBO_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single API call.
	// Env: YOBO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is a zerolog level name for diagnostics on stderr.
	// Env: YOBO_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// clientEnvelope carries the YOBO_ prefix for env parsing.
type clientEnvelope struct {
	Client ClientConfig `envPrefix:"YOBO_"`
}

// ClientDefaults returns the built-in client configuration.
func ClientDefaults() *ClientConfig {
	return &ClientConfig{
		ServerURL:      "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
		LogLevel:       "warn",
	}
}

// GetClientConfig loads the client configuration from environment
// variables, then flags in args, then defaults; earlier sources win. The
// arguments left after the flags are returned as the command line.
//
// Flags:
//
//	-s server URL
//	-t bearer token
//	-timeout request timeout
//	-log-level zerolog level name
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &clientEnvelope{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagCfg.ServerURL, "s", "", "Server URL")
	fs.StringVar(&flagCfg.Token, "t", "", "Bearer token")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{&envCfg.Client, flagCfg, ClientDefaults()} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerURL == "" || cfg.RequestTimeout < 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, fs.Args(), nil
}
