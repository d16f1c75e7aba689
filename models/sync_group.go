// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncGroup names a set of units that are synchronized together on the same
// cadence.
type SyncGroup string

const (
	// SyncGroupFrequent holds entities edited in the field (patients,
	// measurements). Synced every few minutes.
	SyncGroupFrequent SyncGroup = "FREQUENT"

	// SyncGroupDaily holds reference data that rarely changes (facilities).
	SyncGroupDaily SyncGroup = "DAILY"
)

// AllSyncGroups lists the groups in the order a full sync visits them.
func AllSyncGroups() []SyncGroup {
	return []SyncGroup{SyncGroupFrequent, SyncGroupDaily}
}

// SyncProgress is the outcome of a group sync as observed from outside.
type SyncProgress string

const (
	SyncProgressSyncing SyncProgress = "SYNCING"
	SyncProgressSuccess SyncProgress = "SUCCESS"
	SyncProgressFailure SyncProgress = "FAILURE"
)

// SyncConfig describes how a single unit is synchronized.
type SyncConfig struct {
	// Group is the sync group the unit belongs to.
	Group SyncGroup

	// PushBatchSize bounds the number of records sent in one push call.
	PushBatchSize int

	// PullBatchSize is the page size requested from the server. A page
	// shorter than this ends the pull loop.
	PullBatchSize int
}

// LastSyncedState is the aggregate sync state of one group. LastSuccessAt is
// nil until the group has completed a successful run.
type LastSyncedState struct {
	Group         SyncGroup    `json:"sync_group"`
	Progress      SyncProgress `json:"progress,omitempty"`
	LastSuccessAt *time.Time   `json:"last_success_at,omitempty"`
}

// HasProgress reports whether any run of the group was ever observed.
func (s LastSyncedState) HasProgress() bool {
	return s.Progress != ""
}

// SyncGroupResult is published by the orchestrator for every state change of
// a group run. Errors is empty unless Progress is [SyncProgressFailure].
type SyncGroupResult struct {
	RunID    string
	Group    SyncGroup
	Progress SyncProgress
	Errors   []ResolvedError
}

// FirstError returns the first error of the run that should be shown to the
// user, skipping authentication failures.
func (r SyncGroupResult) FirstError() (ResolvedError, bool) {
	for _, e := range r.Errors {
		if e.Kind != ErrorKindUnauthenticated {
			return e, true
		}
	}
	return ResolvedError{}, false
}
