// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package config

import "time"

// Built-in defaults applied when neither env, flags, nor the JSON file
// provide a value.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-auth-sessions"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key and the database DSN have no sensible defaults and must
// be supplied explicitly; everything else falls back to [defaultConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// CacheEntryTTL returns the effective lifetime of a session cache entry:
// the configured value when set, the token duration otherwise. An entry
// therefore never outlives the cryptographic validity of the token it holds.
func (cfg *StructuredConfig) CacheEntryTTL() time.Duration {
	if cfg.Cache.EntryTTL != 0 {
		return cfg.Cache.EntryTTL
	}
	return cfg.Auth.TokenDuration
}
