package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing sync server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates non-positive batch sizes.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative interval or zero parallelism).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidIndicatorConfigs indicates that the staleness threshold does
	// not exceed the just-synced window.
	ErrInvalidIndicatorConfigs = errors.New("invalid indicator configuration")
)
