package coordinator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// PushRepository is the part of the record store a push pass needs.
type PushRepository[T any] interface {
	Entity() string
	// PendingSyncRecords returns PENDING records ordered by (updated_at, id).
	PendingSyncRecords(ctx context.Context, limit, offset int) ([]models.SyncRecord[T], error)
	SetSyncStatusForIDs(ctx context.Context, ids []string, to models.SyncStatus) error
	SetSyncStatus(ctx context.Context, from, to models.SyncStatus) error
}

// PushFunc sends one batch to the server.
type PushFunc[T any] func(ctx context.Context, batch []models.SyncRecord[T]) (models.PushResponse, error)

// PushResult summarises a push pass.
type PushResult struct {
	Batches int
	Sent    int
	Invalid int
}

// Push sends every PENDING record of repo in batches of batchSize.
//
// The offset advances by the number of records sent, not by the number
// accepted. Rejected ids are collected and marked INVALID once the pending
// pool is exhausted, then all remaining PENDING records are marked DONE.
// An error from push or the store aborts the pass and leaves every record
// it touched PENDING.
func Push[T any](ctx context.Context, repo PushRepository[T], batchSize int, push PushFunc[T]) (PushResult, error) {
	var result PushResult
	if batchSize < 1 {
		return result, ErrInvalidBatchSize
	}

	log := logger.FromContext(ctx).WithStr("entity", repo.Entity())
	batchCtx := context.WithoutCancel(ctx)

	var invalidIDs []string
	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := repo.PendingSyncRecords(batchCtx, batchSize, offset)
		if err != nil {
			return result, fmt.Errorf("fetch pending %s records: %w", repo.Entity(), err)
		}
		if len(batch) == 0 {
			break
		}

		resp, err := push(batchCtx, batch)
		if err != nil {
			return result, fmt.Errorf("push %s batch at offset %d: %w", repo.Entity(), offset, err)
		}

		if len(resp.ValidationErrors) > 0 {
			log.Warn().
				Int("count", len(resp.ValidationErrors)).
				Strs("ids", resp.InvalidIDs()).
				Msg("server rejected records")
			invalidIDs = append(invalidIDs, resp.InvalidIDs()...)
		}

		result.Batches++
		result.Sent += len(batch)
		offset += len(batch)
	}

	if len(invalidIDs) > 0 {
		if err := repo.SetSyncStatusForIDs(batchCtx, invalidIDs, models.SyncStatusInvalid); err != nil {
			return result, fmt.Errorf("mark rejected %s records invalid: %w", repo.Entity(), err)
		}
		result.Invalid = len(invalidIDs)
	}

	if err := repo.SetSyncStatus(batchCtx, models.SyncStatusPending, models.SyncStatusDone); err != nil {
		return result, fmt.Errorf("mark pushed %s records done: %w", repo.Entity(), err)
	}

	log.Debug().
		Int("batches", result.Batches).
		Int("sent", result.Sent).
		Int("invalid", result.Invalid).
		Msg("push finished")

	return result, nil
}
