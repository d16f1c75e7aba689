package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// rawRecord is a sync record whose payload is still JSON encoded.
type rawRecord = models.SyncRecord[json.RawMessage]

// RecordRepository stores sync records of a single entity. Payloads are kept
// as opaque JSON; [Records] adds typed access on top.
type RecordRepository interface {
	// Entity is the entity name the repository is scoped to.
	Entity() string
	// FetchByStatus returns one page of records in status ordered by
	// (updated_at, id).
	FetchByStatus(ctx context.Context, status models.SyncStatus, limit, offset int) ([]models.SyncRecord[json.RawMessage], error)
	// Get returns a single record or [ErrRecordNotFound].
	Get(ctx context.Context, id string) (models.SyncRecord[json.RawMessage], error)
	// Save stores local edits. Every saved record becomes PENDING.
	Save(ctx context.Context, records ...models.SyncRecord[json.RawMessage]) error
	// Merge stores server copies as DONE, skipping ids whose local copy is
	// PENDING.
	Merge(ctx context.Context, records ...models.SyncRecord[json.RawMessage]) error
	// SetSyncStatus moves every record in from to to.
	SetSyncStatus(ctx context.Context, from, to models.SyncStatus) error
	// SetSyncStatusForIDs moves the listed records to to.
	SetSyncStatusForIDs(ctx context.Context, ids []string, to models.SyncStatus) error
	// CountByStatus counts records in status.
	CountByStatus(ctx context.Context, status models.SyncStatus) (int, error)
}

// CursorRepository stores the pull continuation token per entity.
type CursorRepository interface {
	// GetCursor returns the stored token, or "" when none was stored.
	GetCursor(ctx context.Context, entity string) (string, error)
	SetCursor(ctx context.Context, entity, token string) error
}

// LastSyncedStateRepository stores the outcome of the latest run per group.
type LastSyncedStateRepository interface {
	// GetLastSyncedState returns the stored state; a group that never synced
	// yields a state with empty Progress.
	GetLastSyncedState(ctx context.Context, group models.SyncGroup) (models.LastSyncedState, error)
	SaveLastSyncedState(ctx context.Context, state models.LastSyncedState) error
}

// SessionRepository stores the bearer token of the signed-in user.
type SessionRepository interface {
	// GetSession returns the token or [ErrLocalSessionNotFound].
	GetSession(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
}
