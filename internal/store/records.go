package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// Records gives typed access to a [RecordRepository]. Payloads are encoded
// with encoding/json.
type Records[T models.Payload] struct {
	repo RecordRepository
	now  func() time.Time
}

// NewRecords wraps repo for payload type T.
func NewRecords[T models.Payload](repo RecordRepository) *Records[T] {
	return &Records[T]{
		repo: repo,
		now:  time.Now,
	}
}

// Entity returns the entity name of the underlying repository.
func (r *Records[T]) Entity() string {
	return r.repo.Entity()
}

// PendingSyncRecords returns one page of PENDING records ordered by
// (updated_at, id).
func (r *Records[T]) PendingSyncRecords(ctx context.Context, limit, offset int) ([]models.SyncRecord[T], error) {
	return r.FetchByStatus(ctx, models.SyncStatusPending, limit, offset)
}

// FetchByStatus returns one page of records in status.
func (r *Records[T]) FetchByStatus(ctx context.Context, status models.SyncStatus, limit, offset int) ([]models.SyncRecord[T], error) {
	raw, err := r.repo.FetchByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	records := make([]models.SyncRecord[T], 0, len(raw))
	for _, rr := range raw {
		record, err := decodeRecord[T](rr)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Get returns the record with id.
func (r *Records[T]) Get(ctx context.Context, id string) (models.SyncRecord[T], error) {
	raw, err := r.repo.Get(ctx, id)
	if err != nil {
		return models.SyncRecord[T]{}, err
	}
	return decodeRecord[T](raw)
}

// Save stores local edits of payloads as PENDING records.
func (r *Records[T]) Save(ctx context.Context, payloads ...T) error {
	raw, err := r.encode(payloads)
	if err != nil {
		return err
	}
	return r.repo.Save(ctx, raw...)
}

// MergeWithLocalData stores server payloads as DONE. Local PENDING copies
// are left untouched.
func (r *Records[T]) MergeWithLocalData(ctx context.Context, payloads []T) error {
	raw, err := r.encode(payloads)
	if err != nil {
		return err
	}
	return r.repo.Merge(ctx, raw...)
}

// SetSyncStatus moves every record in from to to.
func (r *Records[T]) SetSyncStatus(ctx context.Context, from, to models.SyncStatus) error {
	return r.repo.SetSyncStatus(ctx, from, to)
}

// SetSyncStatusForIDs moves the listed records to to.
func (r *Records[T]) SetSyncStatusForIDs(ctx context.Context, ids []string, to models.SyncStatus) error {
	return r.repo.SetSyncStatusForIDs(ctx, ids, to)
}

// PendingSyncRecordCount counts records still waiting to be pushed.
func (r *Records[T]) PendingSyncRecordCount(ctx context.Context) (int, error) {
	return r.repo.CountByStatus(ctx, models.SyncStatusPending)
}

func (r *Records[T]) encode(payloads []T) ([]rawRecord, error) {
	now := r.now().UTC()

	raw := make([]rawRecord, 0, len(payloads))
	for _, p := range payloads {
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("error encoding %s payload %q: %w", r.repo.Entity(), p.RecordID(), err)
		}
		raw = append(raw, rawRecord{
			ID:        p.RecordID(),
			Payload:   data,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return raw, nil
}

func decodeRecord[T models.Payload](raw rawRecord) (models.SyncRecord[T], error) {
	var payload T
	if err := json.Unmarshal(raw.Payload, &payload); err != nil {
		return models.SyncRecord[T]{}, fmt.Errorf("error decoding payload of record %q: %w", raw.ID, err)
	}

	return models.SyncRecord[T]{
		ID:         raw.ID,
		Payload:    payload,
		SyncStatus: raw.SyncStatus,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}, nil
}
