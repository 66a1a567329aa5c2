package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args using
// flag.CommandLine.
//
// Flags:
//
//	-a server address in format [host]:port
//	-grpc-address grpc server address in format [host]:port
//	-driver database driver (postgres, sqlite3)
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-audience token audience
//	-token-expiry-minutes token lifetime in minutes
//	-bcrypt-cost bcrypt work factor
//	-max-slug-attempts slug attempts before a conflict is reported
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, databaseDSN string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, tokenAudience string
	var tokenExpiryMinutes, bcryptCost, maxSlugAttempts int
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	fs.IntVar(&tokenExpiryMinutes, "token-expiry-minutes", 0, "Token lifetime in minutes")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.IntVar(&maxSlugAttempts, "max-slug-attempts", 0, "Slug attempts before conflict")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenAudience:      tokenAudience,
			TokenExpiryMinutes: tokenExpiryMinutes,
			BcryptCost:         bcryptCost,
		},
		Blog: Blog{
			MaxSlugAttempts: maxSlugAttempts,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. The host must be
// "localhost" or a literal IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
