package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/session"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type fakeSession struct {
	restoreErr error
	expired    chan struct{}
}

func (s *fakeSession) Restore(context.Context) error { return s.restoreErr }
func (s *fakeSession) Expired() <-chan struct{}      { return s.expired }

type offlinePinger struct{}

func (offlinePinger) Ping(context.Context) error { return errors.New("offline") }

func newTestApp(t *testing.T, sess SessionManager) (*App, *mock.MockDataSync) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ds := mock.NewMockDataSync(ctrl)
	ds.EXPECT().StreamSyncResults().DoAndReturn(func() (<-chan models.SyncGroupResult, func()) {
		return make(chan models.SyncGroupResult), func() {}
	}).AnyTimes()
	ds.EXPECT().StreamSyncErrors().DoAndReturn(func() (<-chan models.ResolvedError, func()) {
		return make(chan models.ResolvedError), func() {}
	}).AnyTimes()
	ds.EXPECT().LastSyncedState(gomock.Any(), gomock.Any()).Return(models.LastSyncedState{}, nil).AnyTimes()
	ds.EXPECT().PendingCounts(gomock.Any(), gomock.Any()).Return(map[string]int{}, nil).AnyTimes()

	cfg := config.DefaultClientConfig()
	cfg.Adapter.RequestTimeout = 10 * time.Millisecond

	a, err := NewApp(&service.ClientServices{DataSync: ds}, sess, offlinePinger{}, &cfg, logger.NewLogger("test"))
	require.NoError(t, err)
	return a, ds
}

func TestNewApp_RequiresServices(t *testing.T) {
	cfg := config.DefaultClientConfig()
	_, err := NewApp(&service.ClientServices{}, &fakeSession{}, offlinePinger{}, &cfg, logger.NewLogger("test"))
	assert.Error(t, err)
}

func TestNewApp_IndicatorPerGroup(t *testing.T) {
	a, _ := newTestApp(t, &fakeSession{expired: make(chan struct{})})

	for _, group := range models.AllSyncGroups() {
		ind := a.Indicator(group)
		require.NotNil(t, ind, group)
		assert.Equal(t, models.SyncPending, ind.Current())
	}
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, &fakeSession{expired: make(chan struct{}, 1)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Empty(t, a.scheduler.Scheduled())
}

func TestApp_Run_MissingSessionIsNotFatal(t *testing.T) {
	sess := &fakeSession{
		restoreErr: session.ErrNoSession,
		expired:    make(chan struct{}, 1),
	}
	a, _ := newTestApp(t, sess)
	sess.expired <- struct{}{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, a.Run(ctx))
}

func TestApp_Run_RestoreFailure(t *testing.T) {
	broken := errors.New("disk I/O error")
	a, _ := newTestApp(t, &fakeSession{restoreErr: broken})

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, broken)
}
