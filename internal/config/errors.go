package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrUnknownEnvironment indicates an environment label other than
	// "local" or "prod".
	ErrUnknownEnvironment = errors.New("unknown environment: use either `local` or `prod`")
	// ErrInvalidServerConfigs indicates invalid server throttling settings
	// (for example, a negative concurrency limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates that authentication is enabled but a
	// required credential field (login, password hash, sign key) is missing.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
