// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvironmentLocal, EnvironmentProd:
	default:
		return ErrUnknownEnvironment
	}

	if cfg.Server.MaxConcurrentRequests < 0 || cfg.Server.ThrottleBacklog < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.Enabled {
		if cfg.Auth.Login == "" || cfg.Auth.PasswordHash == "" || cfg.Auth.TokenSignKey == "" {
			return ErrInvalidAuthConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
