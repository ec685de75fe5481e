// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-kv-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the runtime environment
	// label and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout, and throttling settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the snapshot file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the optional authentication settings. When Auth.Enabled
	// is false the API is served without authentication, matching a
	// local development setup.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds configuration used by the terminal client transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the runtime environment label: "local" or "prod".
	// It controls log verbosity and defaults to "local".
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and throttling settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server responds with 408 (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxConcurrentRequests is the number of requests allowed in flight
	// at the same time. Requests beyond the limit are queued or shed.
	// Env: SERVER_MAX_CONCURRENT_REQUESTS
	MaxConcurrentRequests int `env:"MAX_CONCURRENT_REQUESTS"`

	// ThrottleBacklog is the number of over-limit requests that may wait
	// for a slot before the server starts shedding load with 503.
	// Zero means shed immediately once the limit is reached.
	// Env: SERVER_THROTTLE_BACKLOG
	ThrottleBacklog int `env:"THROTTLE_BACKLOG"`

	// BacklogTimeout is how long a queued request may wait for a slot
	// before it is rejected with 503.
	// Env: SERVER_BACKLOG_TIMEOUT
	BacklogTimeout time.Duration `env:"BACKLOG_TIMEOUT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the snapshot file settings for the in-memory store.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" DSN selects
	// the PostgreSQL backend; any other non-empty value is treated as a
	// SQLite file path. Empty DSN selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds snapshot settings for the in-memory store.
type Files struct {
	// SnapshotPath is the path of the JSON snapshot file the in-memory
	// store loads at startup and persists to. Empty disables snapshots.
	// Env: STORAGE_FILES_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`
}

// Auth holds authentication settings for the API.
type Auth struct {
	// Enabled turns bearer-token authentication on for the key-value
	// routes. When false the login endpoint responds with 404.
	// Env: AUTH_ENABLED
	Enabled bool `env:"ENABLED"`

	// Login is the account name accepted by the login endpoint.
	// Env: AUTH_LOGIN
	Login string `env:"LOGIN"`

	// PasswordHash is the bcrypt hash of the account password.
	// Must be kept confidential.
	// Env: AUTH_PASSWORD_HASH
	PasswordHash string `env:"PASSWORD_HASH"`

	// Password is the plaintext password used by the terminal client to
	// log in. Never used on the server side.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SnapshotInterval defines how often the snapshot worker flushes the
	// in-memory store to disk. Zero disables the worker.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
}

// Adapter holds configuration for the terminal client transport.
type Adapter struct {
	// HTTPAddress is the server address the client connects to,
	// in "host:port" format or as a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound client request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
