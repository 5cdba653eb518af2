// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the server invariants of a merged configuration.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.Storage.DB.DSN == "":
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	case cfg.Storage.DB.DriverName() != DriverPostgres && cfg.Storage.DB.DriverName() != DriverSQLite:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.Workers.PurgeInterval > 0 && cfg.Workers.CompletedRetention <= 0 {
		return fmt.Errorf("%w: retention must be positive when purging", ErrInvalidWorkerConfigs)
	}

	return nil
}

// validateClient checks what the terminal client needs to reach the server.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: server address and request timeout are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.Token == "" || cfg.Adapter.UserID == "" {
		return fmt.Errorf("%w: token and user are required", ErrInvalidAdapterConfigs)
	}

	return nil
}

// validateToken checks what the token tool needs to sign a token.
func (cfg *StructuredConfig) validateToken() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.UserID == "" {
		return fmt.Errorf("%w: user is required", ErrInvalidAdapterConfigs)
	}

	return nil
}
