package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"hash_key": "security_hash",
			"version": "2.1.0",
			"log_path": "/var/log/sync"
		},
		"storage": {
			"db": { "dsn": "file:sync.db" }
		},
		"adapter": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"sync": {
			"push_batch_size": 25,
			"pull_batch_size": 75
		},
		"workers": {
			"sync_interval": "15m",
			"daily_sync_interval": "24h",
			"max_parallel_syncs": 2,
			"backoff_base": "30s",
			"backoff_max": "10m",
			"pending_poll_interval": 60000000000
		},
		"indicator": {
			"staleness_threshold": "12h",
			"just_synced_window": "15m"
		},
		"telemetry": {
			"sentry_dsn": "https://key@sentry.example.com/1",
			"environment": "dev"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "/var/log/sync", cfg.App.LogPath)

	assert.Equal(t, "file:sync.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 25, cfg.Sync.PushBatchSize)
	assert.Equal(t, 75, cfg.Sync.PullBatchSize)

	assert.Equal(t, 15*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.DailySyncInterval)
	assert.Equal(t, 2, cfg.Workers.MaxParallelSyncs)
	assert.Equal(t, 30*time.Second, cfg.Workers.BackoffBase)
	assert.Equal(t, 10*time.Minute, cfg.Workers.BackoffMax)
	assert.Equal(t, time.Minute, cfg.Workers.PendingPollInterval)

	assert.Equal(t, 12*time.Hour, cfg.Indicator.StalenessThreshold)
	assert.Equal(t, 15*time.Minute, cfg.Indicator.JustSyncedWindow)

	assert.Equal(t, "https://key@sentry.example.com/1", cfg.Telemetry.SentryDSN)
	assert.Equal(t, "dev", cfg.Telemetry.Environment)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"sync_interval": "sometimes"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"x"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
