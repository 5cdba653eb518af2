// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the integrity hash key and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to verify (and, for the token
	// tool, sign) access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every access token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long tokens minted by the token tool stay valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables the request integrity check when non-empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN is a PostgreSQL URL/keyword string or a SQLite file name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is "pgx" or "sqlite3". Inferred from DSN when empty.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Database driver names registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverName returns the configured driver or infers it from the DSN:
// postgres URLs and keyword strings map to pgx, everything else to sqlite3.
func (d DB) DriverName() string {
	if d.Driver != "" {
		return d.Driver
	}

	dsn := strings.TrimSpace(d.DSN)
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return DriverPostgres
	}

	return DriverSQLite
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds client-side connection settings.
type Adapter struct {
	// HTTPAddress is the server base address ("host:port" or URL).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token attached to every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// UserID is the user whose tasks the client works with.
	// Env: ADAPTER_USER_ID
	UserID string `env:"USER_ID"`
}

// Workers holds background worker settings.
type Workers struct {
	// PurgeInterval is how often completed tasks are purged. Zero disables
	// the purge worker.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`

	// CompletedRetention is how long a completed task is kept.
	// Env: WORKERS_COMPLETED_RETENTION
	CompletedRetention time.Duration `env:"COMPLETED_RETENTION"`
}

// Defaults applied below every other configuration source.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultTokenIssuer        = "go-vault-tasks"
	DefaultTokenDuration      = time.Hour
	DefaultVersion            = "dev"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultPurgeInterval      = time.Hour
	DefaultCompletedRetention = 30 * 24 * time.Hour
	DefaultLogLevel           = "debug"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PurgeInterval:      DefaultPurgeInterval,
			CompletedRetention: DefaultCompletedRetention,
		},
	}
}

// loadStructuredConfig merges all sources for the given command-line args
// without validating the result.
func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withJSON(args).
		withEnv().
		withFlags(args).
		build()
}

// GetStructuredConfig loads the server configuration. Sources, from lowest
// to highest priority: defaults, JSON file, environment variables,
// command-line flags. The merged result is validated with the server rules.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig loads the configuration used by the terminal client and
// validates it with the client rules.
func GetClientConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}

// GetTokenConfig loads the configuration used by the token tool.
func GetTokenConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateToken()
}
