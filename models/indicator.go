package models

import (
	"fmt"
	"time"
)

// IndicatorKind enumerates what the user sees in the sync status indicator.
type IndicatorKind int

const (
	// IndicatorSyncPending is shown when local changes wait for a sync, the
	// last run failed, or the last success is not recent.
	IndicatorSyncPending IndicatorKind = iota

	// IndicatorSynced is shown shortly after a successful sync.
	IndicatorSynced

	// IndicatorSyncing is shown while a sync is in flight.
	IndicatorSyncing

	// IndicatorConnectToSync is shown when no sync succeeded for longer than
	// the staleness threshold.
	IndicatorConnectToSync
)

func (k IndicatorKind) String() string {
	switch k {
	case IndicatorSynced:
		return "Synced"
	case IndicatorSyncing:
		return "Syncing"
	case IndicatorConnectToSync:
		return "ConnectToSync"
	default:
		return "SyncPending"
	}
}

// IndicatorState is the derived user-facing sync status. Elapsed is only
// meaningful for [IndicatorSynced].
type IndicatorState struct {
	Kind    IndicatorKind
	Elapsed time.Duration
}

// Synced builds an [IndicatorSynced] state carrying the time since the last
// success.
func Synced(elapsed time.Duration) IndicatorState {
	return IndicatorState{Kind: IndicatorSynced, Elapsed: elapsed}
}

var (
	Syncing       = IndicatorState{Kind: IndicatorSyncing}
	SyncPending   = IndicatorState{Kind: IndicatorSyncPending}
	ConnectToSync = IndicatorState{Kind: IndicatorConnectToSync}
)

func (s IndicatorState) String() string {
	if s.Kind == IndicatorSynced {
		return fmt.Sprintf("Synced(%s)", s.Elapsed.Truncate(time.Second))
	}
	return s.Kind.String()
}
