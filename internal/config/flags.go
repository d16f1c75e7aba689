package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the client command line.
//
// Flags:
//
//	-a sync server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key request signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval FREQUENT group interval (e.g., "15m")
//	-daily-sync-interval DAILY group interval (e.g., "24h")
//	-max-parallel-syncs units synced concurrently within a group
//	-log-path directory for the client log file
//	-sentry-dsn crash reporting DSN
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-sync-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var dailySyncInterval time.Duration
	var maxParallelSyncs int
	var logPath string
	var sentryDSN string

	fs.Var(&serverAddress, "a", "Sync server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Frequent sync interval (e.g., 15m)")
	fs.DurationVar(&dailySyncInterval, "daily-sync-interval", 0, "Daily sync interval (e.g., 24h)")
	fs.IntVar(&maxParallelSyncs, "max-parallel-syncs", 0, "Units synced concurrently within a group")
	fs.StringVar(&logPath, "log-path", "", "Log directory")
	fs.StringVar(&sentryDSN, "sentry-dsn", "", "Sentry DSN")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			LogPath: logPath,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:      syncInterval,
			DailySyncInterval: dailySyncInterval,
			MaxParallelSyncs:  maxParallelSyncs,
		},
		Telemetry: Telemetry{
			SentryDSN: sentryDSN,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// Hostnames are accepted as is; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}
