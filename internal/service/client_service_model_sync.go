package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/coordinator"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// recordStore is the typed record store a unit syncs. *store.Records[T]
// implements it.
type recordStore[T models.Payload] interface {
	coordinator.PushRepository[T]
	coordinator.MergeRepository[T]
	PendingSyncRecordCount(ctx context.Context) (int, error)
}

// recordSync is the generic [ModelSync] used by every entity: payloads are
// sent and received as JSON objects.
type recordSync[T models.Payload] struct {
	records recordStore[T]
	cursors coordinator.CursorStore
	adapter adapter.ServerAdapter

	config           models.SyncConfig
	requiresApproval bool
	pushEnabled      bool
}

func newRecordSync[T models.Payload](
	records recordStore[T],
	cursors coordinator.CursorStore,
	serverAdapter adapter.ServerAdapter,
	cfg models.SyncConfig,
	requiresApproval, pushEnabled bool,
) *recordSync[T] {
	return &recordSync[T]{
		records:          records,
		cursors:          cursors,
		adapter:          serverAdapter,
		config:           cfg,
		requiresApproval: requiresApproval,
		pushEnabled:      pushEnabled,
	}
}

// NewPatientSync returns the unit for patients. Patients are edited on the
// device and sync with the FREQUENT group once the user is approved.
func NewPatientSync(records recordStore[models.Patient], cursors coordinator.CursorStore, serverAdapter adapter.ServerAdapter, cfg config.ClientSync) ModelSync {
	return newRecordSync(records, cursors, serverAdapter, models.SyncConfig{
		Group:         models.SyncGroupFrequent,
		PushBatchSize: cfg.PushBatchSize,
		PullBatchSize: cfg.PullBatchSize,
	}, true, true)
}

// NewBloodPressureSync returns the unit for blood pressure measurements.
func NewBloodPressureSync(records recordStore[models.BloodPressure], cursors coordinator.CursorStore, serverAdapter adapter.ServerAdapter, cfg config.ClientSync) ModelSync {
	return newRecordSync(records, cursors, serverAdapter, models.SyncConfig{
		Group:         models.SyncGroupFrequent,
		PushBatchSize: cfg.PushBatchSize,
		PullBatchSize: cfg.PullBatchSize,
	}, true, true)
}

// NewFacilitySync returns the unit for facilities: reference data that is
// only pulled, once a day, and is available before approval.
func NewFacilitySync(records recordStore[models.Facility], cursors coordinator.CursorStore, serverAdapter adapter.ServerAdapter, cfg config.ClientSync) ModelSync {
	return newRecordSync(records, cursors, serverAdapter, models.SyncConfig{
		Group:         models.SyncGroupDaily,
		PushBatchSize: cfg.PushBatchSize,
		PullBatchSize: cfg.PullBatchSize,
	}, false, false)
}

func (s *recordSync[T]) Name() string {
	return s.records.Entity()
}

func (s *recordSync[T]) SyncConfig() models.SyncConfig {
	return s.config
}

func (s *recordSync[T]) RequiresApprovedIdentity() bool {
	return s.requiresApproval
}

func (s *recordSync[T]) PendingSyncRecordCount(ctx context.Context) (int, error) {
	return s.records.PendingSyncRecordCount(ctx)
}

func (s *recordSync[T]) Push(ctx context.Context) error {
	if !s.pushEnabled {
		return nil
	}

	_, err := coordinator.Push(ctx, s.records, s.config.PushBatchSize, s.pushBatch)
	return err
}

func (s *recordSync[T]) Pull(ctx context.Context) error {
	_, err := coordinator.Pull(ctx, s.records, s.cursors, s.config.PullBatchSize, s.pullPage)
	return err
}

func (s *recordSync[T]) pushBatch(ctx context.Context, batch []models.SyncRecord[T]) (models.PushResponse, error) {
	payloads := make([]json.RawMessage, 0, len(batch))
	for _, record := range batch {
		data, err := json.Marshal(record.Payload)
		if err != nil {
			return models.PushResponse{}, fmt.Errorf("encode %s record %q: %w", s.Name(), record.ID, err)
		}
		payloads = append(payloads, data)
	}

	return s.adapter.Push(ctx, s.Name(), payloads)
}

func (s *recordSync[T]) pullPage(ctx context.Context, token string) (models.PullResponse[T], error) {
	raw, err := s.adapter.Pull(ctx, s.Name(), token, s.config.PullBatchSize)
	if err != nil {
		return models.PullResponse[T]{}, err
	}

	page := models.PullResponse[T]{
		Payloads:     make([]T, 0, len(raw.Payloads)),
		ProcessToken: raw.ProcessToken,
	}
	for i, data := range raw.Payloads {
		var payload T
		if err = json.Unmarshal(data, &payload); err != nil {
			return models.PullResponse[T]{}, fmt.Errorf("decode %s payload %d: %w", s.Name(), i, err)
		}
		page.Payloads = append(page.Payloads, payload)
	}

	return page, nil
}
