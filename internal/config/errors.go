package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates that no listen address is set or the
	// request timeout is not positive.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs indicates missing token parameters.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidWorkerConfigs indicates a purge interval without retention.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidAdapterConfigs indicates missing client connection settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
