// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sync-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request signing key,
	// the application version and the log directory.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the remote sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds batch sizes used by the push and pull loops.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds scheduler settings: intervals, parallelism and backoff.
	Workers Workers `envPrefix:"WORKERS_"`

	// Indicator holds the thresholds of the sync status indicator.
	Indicator Indicator `envPrefix:"INDICATOR_"`

	// Telemetry holds crash reporting settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Optional.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogPath is the directory the client writes its log file into.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:sync.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the outbound transport to the sync server.
type Adapter struct {
	// HTTPAddress is the sync server address in "host:port" format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds batch sizes of the push and pull loops.
type Sync struct {
	// Env: SYNC_PUSH_BATCH_SIZE
	PushBatchSize int `env:"PUSH_BATCH_SIZE"`
	// Env: SYNC_PULL_BATCH_SIZE
	PullBatchSize int `env:"PULL_BATCH_SIZE"`
}

// Workers holds configuration for the background sync scheduler.
type Workers struct {
	// SyncInterval is the period of the FREQUENT sync group.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DailySyncInterval is the period of the DAILY sync group.
	// Env: WORKERS_DAILY_SYNC_INTERVAL
	DailySyncInterval time.Duration `env:"DAILY_SYNC_INTERVAL"`

	// MaxParallelSyncs bounds how many units of one group sync at once.
	// Env: WORKERS_MAX_PARALLEL_SYNCS
	MaxParallelSyncs int `env:"MAX_PARALLEL_SYNCS"`

	// BackoffBase is the first retry delay after a failed run.
	// Env: WORKERS_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffMax caps the retry delay.
	// Env: WORKERS_BACKOFF_MAX
	BackoffMax time.Duration `env:"BACKOFF_MAX"`

	// PendingPollInterval is how often pending record counts are refreshed
	// for the indicator.
	// Env: WORKERS_PENDING_POLL_INTERVAL
	PendingPollInterval time.Duration `env:"PENDING_POLL_INTERVAL"`
}

// Indicator holds thresholds of the sync status indicator.
type Indicator struct {
	// StalenessThreshold is the age of the last success after which the
	// indicator asks the user to connect.
	// Env: INDICATOR_STALENESS_THRESHOLD
	StalenessThreshold time.Duration `env:"STALENESS_THRESHOLD"`

	// JustSyncedWindow is how long a success is shown as "synced".
	// Env: INDICATOR_JUST_SYNCED_WINDOW
	JustSyncedWindow time.Duration `env:"JUST_SYNCED_WINDOW"`
}

// Telemetry holds crash reporting settings.
type Telemetry struct {
	// SentryDSN enables crash reporting when non-empty.
	// Env: TELEMETRY_SENTRY_DSN
	SentryDSN string `env:"SENTRY_DSN"`

	// Environment is attached to every reported event.
	// Env: TELEMETRY_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
