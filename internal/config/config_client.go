package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// Version is reported to the crash reporter as the release.
	Version string
	// LogPath is the directory of the client log file.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the sync server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds batch sizes of the push and pull loops.
type ClientSync struct {
	PushBatchSize int
	PullBatchSize int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the FREQUENT group syncs.
	SyncInterval time.Duration
	// DailySyncInterval defines how often the DAILY group syncs.
	DailySyncInterval time.Duration
	// MaxParallelSyncs bounds concurrent unit syncs within a group.
	MaxParallelSyncs int
	// BackoffBase and BackoffMax shape the retry delay after a failed run.
	BackoffBase time.Duration
	BackoffMax  time.Duration
	// PendingPollInterval defines how often pending counts are refreshed.
	PendingPollInterval time.Duration
}

// ClientIndicator holds sync status indicator thresholds.
type ClientIndicator struct {
	StalenessThreshold time.Duration
	JustSyncedWindow   time.Duration
}

// ClientTelemetry holds crash reporting settings.
type ClientTelemetry struct {
	SentryDSN   string
	Environment string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the sync server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains push and pull batch sizes.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
	// Indicator contains sync status indicator thresholds.
	Indicator ClientIndicator
	// Telemetry contains crash reporting settings.
	Telemetry ClientTelemetry
}

// DefaultClientConfig returns the values used for every setting left unset
// by all configuration sources. DSN and server address have no default.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Adapter: ClientAdapter{
			RequestTimeout: 30 * time.Second,
		},
		Sync: ClientSync{
			PushBatchSize: 500,
			PullBatchSize: 1000,
		},
		Workers: ClientWorkers{
			SyncInterval:        15 * time.Minute,
			DailySyncInterval:   24 * time.Hour,
			MaxParallelSyncs:    1,
			BackoffBase:         30 * time.Second,
			BackoffMax:          15 * time.Minute,
			PendingPollInterval: 30 * time.Second,
		},
		Indicator: ClientIndicator{
			StalenessThreshold: 12 * time.Hour,
			JustSyncedWindow:   15 * time.Minute,
		},
		Telemetry: ClientTelemetry{
			Environment: "production",
		},
	}
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies [DefaultClientConfig] to zero
// fields and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
			LogPath: cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Sync: ClientSync{
			PushBatchSize: cfg.Sync.PushBatchSize,
			PullBatchSize: cfg.Sync.PullBatchSize,
		},
		Workers: ClientWorkers{
			SyncInterval:        cfg.Workers.SyncInterval,
			DailySyncInterval:   cfg.Workers.DailySyncInterval,
			MaxParallelSyncs:    cfg.Workers.MaxParallelSyncs,
			BackoffBase:         cfg.Workers.BackoffBase,
			BackoffMax:          cfg.Workers.BackoffMax,
			PendingPollInterval: cfg.Workers.PendingPollInterval,
		},
		Indicator: ClientIndicator{
			StalenessThreshold: cfg.Indicator.StalenessThreshold,
			JustSyncedWindow:   cfg.Indicator.JustSyncedWindow,
		},
		Telemetry: ClientTelemetry{
			SentryDSN:   cfg.Telemetry.SentryDSN,
			Environment: cfg.Telemetry.Environment,
		},
	}

	defaults := DefaultClientConfig()
	if err := mergo.Merge(clientCfg, defaults); err != nil {
		return nil, fmt.Errorf("error applying config defaults: %w", err)
	}

	return clientCfg, clientCfg.validate()
}
