// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// fakeRecords is a minimal recordStore: pending records are served in
// order and status changes are applied in memory.
type fakeRecords[T models.Payload] struct {
	entity  string
	records []models.SyncRecord[T]
	merged  []T
}

func (f *fakeRecords[T]) Entity() string { return f.entity }

func (f *fakeRecords[T]) PendingSyncRecords(_ context.Context, limit, offset int) ([]models.SyncRecord[T], error) {
	var pending []models.SyncRecord[T]
	for _, r := range f.records {
		if r.SyncStatus == models.SyncStatusPending {
			pending = append(pending, r)
		}
	}
	if offset >= len(pending) {
		return nil, nil
	}
	return pending[offset:min(offset+limit, len(pending))], nil
}

func (f *fakeRecords[T]) SetSyncStatusForIDs(_ context.Context, ids []string, to models.SyncStatus) error {
	for i := range f.records {
		for _, id := range ids {
			if f.records[i].ID == id {
				f.records[i].SyncStatus = to
			}
		}
	}
	return nil
}

func (f *fakeRecords[T]) SetSyncStatus(_ context.Context, from, to models.SyncStatus) error {
	for i := range f.records {
		if f.records[i].SyncStatus == from {
			f.records[i].SyncStatus = to
		}
	}
	return nil
}

func (f *fakeRecords[T]) MergeWithLocalData(_ context.Context, payloads []T) error {
	f.merged = append(f.merged, payloads...)
	return nil
}

func (f *fakeRecords[T]) PendingSyncRecordCount(context.Context) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.IsPending() {
			n++
		}
	}
	return n, nil
}

// memCursors is an in-memory coordinator.CursorStore.
type memCursors map[string]string

func (m memCursors) GetCursor(_ context.Context, entity string) (string, error) {
	return m[entity], nil
}

func (m memCursors) SetCursor(_ context.Context, entity, token string) error {
	m[entity] = token
	return nil
}

func pendingPatient(id, name string) models.SyncRecord[models.Patient] {
	return models.SyncRecord[models.Patient]{
		ID:         id,
		Payload:    models.Patient{ID: id, FullName: name},
		SyncStatus: models.SyncStatusPending,
	}
}

var testSyncCfg = config.ClientSync{PushBatchSize: 2, PullBatchSize: 2}

func TestPatientSync_Config(t *testing.T) {
	ctrl := gomock.NewController(t)
	unit := NewPatientSync(&fakeRecords[models.Patient]{entity: "patients"}, memCursors{}, mock.NewMockServerAdapter(ctrl), testSyncCfg)

	assert.Equal(t, "patients", unit.Name())
	assert.True(t, unit.RequiresApprovedIdentity())
	assert.Equal(t, models.SyncConfig{Group: models.SyncGroupFrequent, PushBatchSize: 2, PullBatchSize: 2}, unit.SyncConfig())
}

func TestPatientSync_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	records := &fakeRecords[models.Patient]{entity: "patients", records: []models.SyncRecord[models.Patient]{
		pendingPatient("p1", "Asha"),
		pendingPatient("p2", "Bilal"),
		pendingPatient("p3", "Chen"),
	}}

	gomock.InOrder(
		serverAdapter.EXPECT().Push(gomock.Any(), "patients", gomock.Len(2)).
			DoAndReturn(func(_ context.Context, _ string, batch []json.RawMessage) (models.PushResponse, error) {
				var p models.Patient
				require.NoError(t, json.Unmarshal(batch[0], &p))
				assert.Equal(t, "Asha", p.FullName)
				return models.PushResponse{ValidationErrors: []models.ValidationError{{ID: "p2", Messages: []string{"age missing"}}}}, nil
			}),
		serverAdapter.EXPECT().Push(gomock.Any(), "patients", gomock.Len(1)).
			Return(models.PushResponse{}, nil),
	)

	unit := NewPatientSync(records, memCursors{}, serverAdapter, testSyncCfg)
	require.NoError(t, unit.Push(context.Background()))

	assert.Equal(t, models.SyncStatusDone, records.records[0].SyncStatus)
	assert.Equal(t, models.SyncStatusInvalid, records.records[1].SyncStatus)
	assert.Equal(t, models.SyncStatusDone, records.records[2].SyncStatus)
}

func TestPatientSync_Pull(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	records := &fakeRecords[models.Patient]{entity: "patients"}
	cursors := memCursors{}

	gomock.InOrder(
		serverAdapter.EXPECT().Pull(gomock.Any(), "patients", "", 2).Return(models.RawPullResponse{
			Payloads:     []json.RawMessage{json.RawMessage(`{"id":"p1","full_name":"Asha"}`), json.RawMessage(`{"id":"p2"}`)},
			ProcessToken: "t1",
		}, nil),
		serverAdapter.EXPECT().Pull(gomock.Any(), "patients", "t1", 2).Return(models.RawPullResponse{
			Payloads:     []json.RawMessage{json.RawMessage(`{"id":"p3"}`)},
			ProcessToken: "t2",
		}, nil),
	)

	unit := NewPatientSync(records, cursors, serverAdapter, testSyncCfg)
	require.NoError(t, unit.Pull(context.Background()))

	require.Len(t, records.merged, 3)
	assert.Equal(t, "Asha", records.merged[0].FullName)
	assert.Equal(t, "t2", cursors["patients"])
}

func TestPatientSync_PullDecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	records := &fakeRecords[models.Patient]{entity: "patients"}
	cursors := memCursors{}

	serverAdapter.EXPECT().Pull(gomock.Any(), "patients", "", 2).Return(models.RawPullResponse{
		Payloads:     []json.RawMessage{json.RawMessage(`{"id":42}`)},
		ProcessToken: "t1",
	}, nil)

	unit := NewPatientSync(records, cursors, serverAdapter, testSyncCfg)
	err := unit.Pull(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.ErrorKindUnexpected, ResolveError("patients", err).Kind)
	assert.Empty(t, records.merged)
	assert.Empty(t, cursors)
}

func TestFacilitySync_PullOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	records := &fakeRecords[models.Facility]{entity: "facilities"}

	serverAdapter.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	serverAdapter.EXPECT().Pull(gomock.Any(), "facilities", "", 2).Return(models.RawPullResponse{}, nil)

	unit := NewFacilitySync(records, memCursors{}, serverAdapter, testSyncCfg)

	assert.False(t, unit.RequiresApprovedIdentity())
	assert.Equal(t, models.SyncGroupDaily, unit.SyncConfig().Group)
	require.NoError(t, unit.Push(context.Background()))
	require.NoError(t, unit.Pull(context.Background()))
}

func TestBloodPressureSync_PendingCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := &fakeRecords[models.BloodPressure]{entity: "blood_pressures", records: []models.SyncRecord[models.BloodPressure]{
		{ID: "b1", SyncStatus: models.SyncStatusPending},
		{ID: "b2", SyncStatus: models.SyncStatusDone},
	}}

	unit := NewBloodPressureSync(records, memCursors{}, mock.NewMockServerAdapter(ctrl), testSyncCfg)

	n, err := unit.PendingSyncRecordCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, unit.RequiresApprovedIdentity())
}
