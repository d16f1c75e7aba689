package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	indicatorNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	thresholds   = IndicatorThresholds{Staleness: 12 * time.Hour, JustSynced: 15 * time.Minute}
)

func successAgo(d time.Duration, progress models.SyncProgress) models.LastSyncedState {
	at := indicatorNow.Add(-d)
	return models.LastSyncedState{Group: models.SyncGroupFrequent, Progress: progress, LastSuccessAt: &at}
}

func TestDerive(t *testing.T) {
	none := map[string]int{"patients": 0}
	some := map[string]int{"patients": 0, "blood_pressures": 2}

	tests := []struct {
		name    string
		state   models.LastSyncedState
		pending map[string]int
		want    models.IndicatorState
	}{
		{name: "syncing dominates", state: successAgo(20*time.Hour, models.SyncProgressSyncing), pending: some, want: models.Syncing},
		{name: "syncing without success", state: models.LastSyncedState{Progress: models.SyncProgressSyncing}, want: models.Syncing},
		{name: "never synced", state: models.LastSyncedState{}, pending: none, want: models.SyncPending},
		{name: "never succeeded", state: models.LastSyncedState{Progress: models.SyncProgressFailure}, want: models.SyncPending},
		{name: "stale success", state: successAgo(20*time.Hour, models.SyncProgressSuccess), pending: none, want: models.ConnectToSync},
		{name: "stale beats pending", state: successAgo(13*time.Hour, models.SyncProgressFailure), pending: some, want: models.ConnectToSync},
		{name: "pending records", state: successAgo(time.Minute, models.SyncProgressSuccess), pending: some, want: models.SyncPending},
		{name: "last run failed", state: successAgo(time.Minute, models.SyncProgressFailure), pending: none, want: models.SyncPending},
		{name: "clock skew", state: successAgo(-time.Hour, models.SyncProgressSuccess), pending: none, want: models.SyncPending},
		{name: "outside just synced window", state: successAgo(time.Hour, models.SyncProgressSuccess), pending: none, want: models.SyncPending},
		{name: "just synced", state: successAgo(5*time.Minute, models.SyncProgressSuccess), pending: none, want: models.Synced(5 * time.Minute)},
		{name: "synced nil pending", state: successAgo(0, models.SyncProgressSuccess), want: models.Synced(0)},
		{name: "exactly at window", state: successAgo(15*time.Minute, models.SyncProgressSuccess), want: models.Synced(15 * time.Minute)},
		{name: "exactly at staleness", state: successAgo(12*time.Hour, models.SyncProgressSuccess), want: models.SyncPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.state, tt.pending, indicatorNow, thresholds))
		})
	}
}

func TestDerive_LastSuccessTwentyHoursAgo(t *testing.T) {
	state := successAgo(20*time.Hour, models.SyncProgressSuccess)
	assert.Equal(t, models.ConnectToSync, Derive(state, nil, indicatorNow, thresholds))
}

func TestDerive_Total(t *testing.T) {
	progresses := []models.SyncProgress{"", models.SyncProgressSyncing, models.SyncProgressSuccess, models.SyncProgressFailure}
	ages := []*time.Duration{nil}
	for _, d := range []time.Duration{-time.Hour, 0, time.Minute, 15 * time.Minute, time.Hour, 12 * time.Hour, 48 * time.Hour} {
		ages = append(ages, &d)
	}
	pendings := []map[string]int{nil, {}, {"a": 0}, {"a": 1}, {"a": -1}}

	for _, p := range progresses {
		for _, age := range ages {
			for _, pending := range pendings {
				state := models.LastSyncedState{Progress: p}
				if age != nil {
					at := indicatorNow.Add(-*age)
					state.LastSuccessAt = &at
				}

				got := Derive(state, pending, indicatorNow, thresholds)
				assert.Contains(t, []models.IndicatorKind{
					models.IndicatorSynced, models.IndicatorSyncing, models.IndicatorSyncPending, models.IndicatorConnectToSync,
				}, got.Kind)
				if p == models.SyncProgressSyncing {
					assert.Equal(t, models.Syncing, got)
				}
			}
		}
	}
}

func newTestIndicator(t *testing.T) (*SyncIndicator, *mock.MockDataSync, *mock.MockSyncTrigger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ds := mock.NewMockDataSync(ctrl)
	trigger := mock.NewMockSyncTrigger(ctrl)

	ind := NewSyncIndicator(models.SyncGroupFrequent, ds, trigger, thresholds, time.Hour, logger.Nop())
	ind.now = func() time.Time { return indicatorNow }
	return ind, ds, trigger
}

func TestSyncIndicator_PublishesOnlyOnChange(t *testing.T) {
	ind, ds, _ := newTestIndicator(t)
	ctx := context.Background()

	ds.EXPECT().LastSyncedState(gomock.Any(), models.SyncGroupFrequent).
		Return(successAgo(time.Minute, models.SyncProgressSuccess), nil).Times(2)
	ds.EXPECT().PendingCounts(gomock.Any(), models.SyncGroupFrequent).
		Return(map[string]int{"patients": 0}, nil)

	states, unsubscribe := ind.Stream()
	defer unsubscribe()

	ind.reloadState(ctx)
	ind.pollPending(ctx)
	ind.reloadState(ctx)

	require.Len(t, states, 1)
	assert.Equal(t, models.Synced(time.Minute), <-states)
	assert.Equal(t, models.Synced(time.Minute), ind.Current())
}

func TestSyncIndicator_PendingFlipsState(t *testing.T) {
	ind, ds, _ := newTestIndicator(t)
	ctx := context.Background()

	ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(successAgo(time.Minute, models.SyncProgressSuccess), nil)
	gomock.InOrder(
		ds.EXPECT().PendingCounts(gomock.Any(), gomock.Any()).Return(map[string]int{"patients": 1}, nil),
		ds.EXPECT().PendingCounts(gomock.Any(), gomock.Any()).Return(map[string]int{"patients": 0}, nil),
	)

	states, unsubscribe := ind.Stream()
	defer unsubscribe()

	ind.reloadState(ctx)
	ind.pollPending(ctx)
	ind.pollPending(ctx)

	assert.Equal(t, models.Synced(time.Minute), <-states)
	assert.Equal(t, models.SyncPending, <-states)
	assert.Equal(t, models.Synced(time.Minute), <-states)
}

func TestSyncIndicator_ElapsedRefresh(t *testing.T) {
	ind, ds, _ := newTestIndicator(t)

	ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(successAgo(time.Minute, models.SyncProgressSuccess), nil)

	states, unsubscribe := ind.Stream()
	defer unsubscribe()

	ind.reloadState(context.Background())
	<-states

	ind.now = func() time.Time { return indicatorNow.Add(30 * time.Second) }
	ind.recompute()
	assert.Empty(t, states, "same minute is not republished")

	ind.now = func() time.Time { return indicatorNow.Add(2 * time.Minute) }
	ind.recompute()
	assert.Equal(t, models.Synced(3*time.Minute), <-states)
}

func TestSyncIndicator_StreamReplaysCurrent(t *testing.T) {
	ind, ds, _ := newTestIndicator(t)
	ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(models.LastSyncedState{}, nil)

	ind.reloadState(context.Background())

	states, unsubscribe := ind.Stream()
	defer unsubscribe()
	assert.Equal(t, models.SyncPending, <-states)
}

func TestSyncIndicator_RequestSync(t *testing.T) {
	ind, _, trigger := newTestIndicator(t)

	trigger.EXPECT().RunNow(gomock.Any(), models.SyncGroupFrequent, gomock.Any()).Return(nil)

	require.NoError(t, ind.RequestSync(context.Background(), nil))
}

func TestSyncIndicator_RequestSyncIgnoredWhileSyncing(t *testing.T) {
	ind, ds, trigger := newTestIndicator(t)
	trigger.EXPECT().RunNow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(models.LastSyncedState{}, nil).AnyTimes()
	ds.EXPECT().PendingCounts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ind.applyResult(context.Background(), models.SyncGroupResult{Group: models.SyncGroupFrequent, Progress: models.SyncProgressSyncing})

	assert.Equal(t, models.Syncing, ind.Current())
	require.NoError(t, ind.RequestSync(context.Background(), nil))
}

func TestSyncIndicator_Run(t *testing.T) {
	ind, ds, _ := newTestIndicator(t)
	results := make(chan models.SyncGroupResult, 4)

	ds.EXPECT().StreamSyncResults().Return((<-chan models.SyncGroupResult)(results), func() {})
	gomock.InOrder(
		ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(models.LastSyncedState{}, nil),
		ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(successAgo(0, models.SyncProgressSuccess), nil),
	)
	ds.EXPECT().PendingCounts(gomock.Any(), gomock.Any()).Return(map[string]int{}, nil).Times(2)

	states, unsubscribe := ind.Stream()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ind.Run(ctx)
		close(done)
	}()

	assert.Equal(t, models.SyncPending, <-states)

	results <- models.SyncGroupResult{Group: models.SyncGroupDaily, Progress: models.SyncProgressSyncing}
	results <- models.SyncGroupResult{Group: models.SyncGroupFrequent, Progress: models.SyncProgressSyncing}
	assert.Equal(t, models.Syncing, <-states)

	results <- models.SyncGroupResult{Group: models.SyncGroupFrequent, Progress: models.SyncProgressSuccess}
	assert.Equal(t, models.Synced(0), <-states)

	cancel()
	<-done
}
