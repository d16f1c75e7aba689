package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "sync.example.com:8443",
				"-d", "file:sync.db",
				"-c", "/etc/sync/config.json",
				"-hash-key", "secret",
				"-request-timeout", "45s",
				"-sync-interval", "5m",
				"-daily-sync-interval", "6h",
				"-max-parallel-syncs", "4",
				"-log-path", "/tmp/logs",
				"-sentry-dsn", "https://key@sentry.example.com/1",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "sync.example.com:8443", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "file:sync.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/etc/sync/config.json", cfg.JSONFilePath)
				assert.Equal(t, "secret", cfg.App.HashKey)
				assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, 6*time.Hour, cfg.Workers.DailySyncInterval)
				assert.Equal(t, 4, cfg.Workers.MaxParallelSyncs)
				assert.Equal(t, "/tmp/logs", cfg.App.LogPath)
				assert.Equal(t, "https://key@sentry.example.com/1", cfg.Telemetry.SentryDSN)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/sync/alias.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/sync/alias.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "address without port", args: []string{"-a", "invalid"}},
		{name: "non numeric port", args: []string{"-a", "localhost:abc"}},
		{name: "port out of range", args: []string{"-a", "localhost:70000"}},
		{name: "empty host", args: []string{"-a", ":8080"}},
		{name: "bad duration", args: []string{"-sync-interval", "soon"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNetAddress_SetAndString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"localhost:8080", "localhost:8080"},
		{"127.0.0.1:9090", "127.0.0.1:9090"},
		{"sync.example.com:443", "sync.example.com:443"},
		{"[::1]:8080", "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

func TestNetAddress_EmptyString(t *testing.T) {
	addr := &NetAddress{}
	assert.Empty(t, addr.String())
}
