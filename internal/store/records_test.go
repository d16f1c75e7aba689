package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// spyRecordRepository records what Records passes down.
type spyRecordRepository struct {
	saved   []rawRecord
	merged  []rawRecord
	fetched []rawRecord
	err     error
}

func (s *spyRecordRepository) Entity() string { return "patients" }

func (s *spyRecordRepository) FetchByStatus(_ context.Context, _ models.SyncStatus, _, _ int) ([]rawRecord, error) {
	return s.fetched, s.err
}

func (s *spyRecordRepository) Get(_ context.Context, id string) (rawRecord, error) {
	for _, r := range s.fetched {
		if r.ID == id {
			return r, nil
		}
	}
	return rawRecord{}, ErrRecordNotFound
}

func (s *spyRecordRepository) Save(_ context.Context, records ...rawRecord) error {
	s.saved = append(s.saved, records...)
	return s.err
}

func (s *spyRecordRepository) Merge(_ context.Context, records ...rawRecord) error {
	s.merged = append(s.merged, records...)
	return s.err
}

func (s *spyRecordRepository) SetSyncStatus(context.Context, models.SyncStatus, models.SyncStatus) error {
	return s.err
}

func (s *spyRecordRepository) SetSyncStatusForIDs(context.Context, []string, models.SyncStatus) error {
	return s.err
}

func (s *spyRecordRepository) CountByStatus(context.Context, models.SyncStatus) (int, error) {
	return len(s.fetched), s.err
}

func TestRecords_MergeEncodesPayloads(t *testing.T) {
	spy := &spyRecordRepository{}
	records := NewRecords[models.Patient](spy)
	fixed := time.Date(2030, 5, 1, 8, 0, 0, 0, time.FixedZone("X", 3600))
	records.now = func() time.Time { return fixed }

	err := records.MergeWithLocalData(context.Background(), []models.Patient{{ID: "p1", FullName: "Ann"}})
	require.NoError(t, err)

	require.Len(t, spy.merged, 1)
	assert.Equal(t, "p1", spy.merged[0].ID)
	assert.Equal(t, fixed.UTC(), spy.merged[0].UpdatedAt)

	var decoded models.Patient
	require.NoError(t, json.Unmarshal(spy.merged[0].Payload, &decoded))
	assert.Equal(t, "Ann", decoded.FullName)
}

func TestRecords_PendingSyncRecordsDecodes(t *testing.T) {
	spy := &spyRecordRepository{fetched: []rawRecord{
		{ID: "p1", Payload: json.RawMessage(`{"id":"p1","full_name":"Ann"}`), SyncStatus: models.SyncStatusPending},
	}}
	records := NewRecords[models.Patient](spy)

	got, err := records.PendingSyncRecords(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Payload.FullName)
	assert.True(t, got[0].IsPending())
}

func TestRecords_DecodeError(t *testing.T) {
	spy := &spyRecordRepository{fetched: []rawRecord{
		{ID: "p1", Payload: json.RawMessage(`not json`)},
	}}
	records := NewRecords[models.Patient](spy)

	_, err := records.PendingSyncRecords(context.Background(), 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"p1"`)
}

func TestRecords_PropagatesRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	records := NewRecords[models.Patient](&spyRecordRepository{err: boom})

	_, err := records.PendingSyncRecordCount(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, records.Save(context.Background(), models.Patient{ID: "p"}), boom)
}
