package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string `json:"token_sign_key"`
		TokenIssuer        string `json:"token_issuer"`
		TokenAudience      string `json:"token_audience"`
		TokenExpiryMinutes int    `json:"token_expiry_minutes"`
		BcryptCost         int    `json:"bcrypt_cost"`
		Version            string `json:"version"`
		Password           struct {
			MinLength              int   `json:"min_length"`
			MaxLength              int   `json:"max_length"`
			RequireDigit           *bool `json:"require_digit"`
			RequireLowercase       *bool `json:"require_lowercase"`
			RequireUppercase       *bool `json:"require_uppercase"`
			RequireNonAlphanumeric *bool `json:"require_non_alphanumeric"`
			RequiredUniqueChars    int   `json:"required_unique_chars"`
		} `json:"password,omitempty"`
	} `json:"app,omitempty"`

	Blog struct {
		MaxSlugAttempts int `json:"max_slug_attempts"`
	} `json:"blog,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	password := jsonCfg.App.Password
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenAudience:      jsonCfg.App.TokenAudience,
			TokenExpiryMinutes: jsonCfg.App.TokenExpiryMinutes,
			BcryptCost:         jsonCfg.App.BcryptCost,
			Version:            jsonCfg.App.Version,
			Password: PasswordPolicy{
				MinLength:              password.MinLength,
				MaxLength:              password.MaxLength,
				RequireDigit:           password.RequireDigit,
				RequireLowercase:       password.RequireLowercase,
				RequireUppercase:       password.RequireUppercase,
				RequireNonAlphanumeric: password.RequireNonAlphanumeric,
				RequiredUniqueChars:    password.RequiredUniqueChars,
			},
		},
		Blog: Blog{
			MaxSlugAttempts: jsonCfg.Blog.MaxSlugAttempts,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
