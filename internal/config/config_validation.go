// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final [ClientConfig] satisfies all runtime
// invariants before it is used at startup. HashKey and SentryDSN are
// optional.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.PushBatchSize < 1 || cfg.Sync.PullBatchSize < 1 {
		return ErrInvalidSyncConfigs
	}

	w := cfg.Workers
	if w.SyncInterval <= 0 || w.DailySyncInterval <= 0 || w.PendingPollInterval <= 0 ||
		w.BackoffBase <= 0 || w.BackoffMax < w.BackoffBase || w.MaxParallelSyncs < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Indicator.JustSyncedWindow <= 0 ||
		cfg.Indicator.StalenessThreshold <= cfg.Indicator.JustSyncedWindow {
		return ErrInvalidIndicatorConfigs
	}

	return nil
}
