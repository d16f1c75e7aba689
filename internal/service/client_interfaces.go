package service

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ModelSync binds one entity type to its remote push and pull calls. The
// orchestrator holds a homogeneous list of units and drives them without
// knowing their payload types.
type ModelSync interface {
	// Name is the entity name, used in logs, errors and the pull cursor key.
	Name() string

	// SyncConfig returns the group and batch sizes of the unit.
	SyncConfig() models.SyncConfig

	// RequiresApprovedIdentity reports whether the unit may only sync once
	// the signed-in user has been approved for syncing.
	RequiresApprovedIdentity() bool

	// Push sends all PENDING records of the entity. Units without local
	// writes return nil.
	Push(ctx context.Context) error

	// Pull merges all server changes since the stored cursor.
	Pull(ctx context.Context) error

	// PendingSyncRecordCount counts records waiting to be pushed.
	PendingSyncRecordCount(ctx context.Context) (int, error)
}

// UserSession is the session layer as seen by the orchestrator.
type UserSession interface {
	// CanSyncData reports whether the signed-in user is approved for sync.
	CanSyncData(ctx context.Context) (bool, error)

	// Expire drops the current session and asks the user to sign in again.
	Expire(ctx context.Context) error
}

// CrashReporter receives failures that indicate a client defect.
type CrashReporter interface {
	Report(ctx context.Context, err error)
}

// DataSync runs sync groups and publishes their outcomes.
type DataSync interface {
	// Run syncs every unit of group and returns the final result. It never
	// returns early on a unit failure.
	Run(ctx context.Context, group models.SyncGroup) models.SyncGroupResult

	// StreamSyncResults subscribes to group results. The returned function
	// unsubscribes and closes the channel.
	StreamSyncResults() (<-chan models.SyncGroupResult, func())

	// StreamSyncErrors subscribes to classified errors.
	StreamSyncErrors() (<-chan models.ResolvedError, func())

	// LastSyncedState returns the persisted state of group.
	LastSyncedState(ctx context.Context, group models.SyncGroup) (models.LastSyncedState, error)

	// PendingCounts returns the number of PENDING records per entity of
	// group.
	PendingCounts(ctx context.Context, group models.SyncGroup) (map[string]int, error)
}

// SyncTrigger starts an immediate run outside the periodic cadence.
type SyncTrigger interface {
	RunNow(ctx context.Context, group models.SyncGroup, onError func(models.ResolvedError)) error
}
