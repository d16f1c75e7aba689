package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations may be given as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		PushBatchSize int `json:"push_batch_size"`
		PullBatchSize int `json:"pull_batch_size"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval        Duration `json:"sync_interval"`
		DailySyncInterval   Duration `json:"daily_sync_interval"`
		MaxParallelSyncs    int      `json:"max_parallel_syncs"`
		BackoffBase         Duration `json:"backoff_base"`
		BackoffMax          Duration `json:"backoff_max"`
		PendingPollInterval Duration `json:"pending_poll_interval"`
	} `json:"workers,omitempty"`

	Indicator struct {
		StalenessThreshold Duration `json:"staleness_threshold"`
		JustSyncedWindow   Duration `json:"just_synced_window"`
	} `json:"indicator,omitempty"`

	Telemetry struct {
		SentryDSN   string `json:"sentry_dsn"`
		Environment string `json:"environment"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
			LogPath: jsonCfg.App.LogPath,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			PushBatchSize: jsonCfg.Sync.PushBatchSize,
			PullBatchSize: jsonCfg.Sync.PullBatchSize,
		},
		Workers: Workers{
			SyncInterval:        time.Duration(jsonCfg.Workers.SyncInterval),
			DailySyncInterval:   time.Duration(jsonCfg.Workers.DailySyncInterval),
			MaxParallelSyncs:    jsonCfg.Workers.MaxParallelSyncs,
			BackoffBase:         time.Duration(jsonCfg.Workers.BackoffBase),
			BackoffMax:          time.Duration(jsonCfg.Workers.BackoffMax),
			PendingPollInterval: time.Duration(jsonCfg.Workers.PendingPollInterval),
		},
		Indicator: Indicator{
			StalenessThreshold: time.Duration(jsonCfg.Indicator.StalenessThreshold),
			JustSyncedWindow:   time.Duration(jsonCfg.Indicator.JustSyncedWindow),
		},
		Telemetry: Telemetry{
			SentryDSN:   jsonCfg.Telemetry.SentryDSN,
			Environment: jsonCfg.Telemetry.Environment,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
