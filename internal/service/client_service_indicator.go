package service

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// refreshInterval keeps the elapsed time of a Synced state current.
const refreshInterval = time.Minute

// IndicatorThresholds configure [Derive].
type IndicatorThresholds struct {
	// Staleness is the age of the last success after which the user is
	// asked to connect.
	Staleness time.Duration
	// JustSynced is how long a success is shown as Synced.
	JustSynced time.Duration
}

// NewIndicatorThresholds maps the indicator config.
func NewIndicatorThresholds(cfg config.ClientIndicator) IndicatorThresholds {
	return IndicatorThresholds{
		Staleness:  cfg.StalenessThreshold,
		JustSynced: cfg.JustSyncedWindow,
	}
}

// Derive computes what the sync status indicator shows. It has no side
// effects and returns a state for every input.
func Derive(state models.LastSyncedState, pending map[string]int, now time.Time, th IndicatorThresholds) models.IndicatorState {
	if state.Progress == models.SyncProgressSyncing {
		return models.Syncing
	}
	if state.LastSuccessAt == nil {
		return models.SyncPending
	}

	elapsed := now.Sub(*state.LastSuccessAt)
	switch {
	case elapsed > th.Staleness:
		return models.ConnectToSync
	case hasPending(pending):
		return models.SyncPending
	case state.Progress == models.SyncProgressFailure:
		return models.SyncPending
	case elapsed < 0:
		// last success is in the future: clock skew
		return models.SyncPending
	case elapsed > th.JustSynced:
		return models.SyncPending
	}

	return models.Synced(elapsed)
}

func hasPending(pending map[string]int) bool {
	for _, n := range pending {
		if n > 0 {
			return true
		}
	}
	return false
}

// SyncIndicator keeps the indicator state of one sync group current and
// streams every change.
type SyncIndicator struct {
	group      models.SyncGroup
	dataSync   DataSync
	trigger    SyncTrigger
	thresholds IndicatorThresholds

	pollInterval time.Duration
	now          func() time.Time

	mu        sync.Mutex
	state     models.LastSyncedState
	pending   map[string]int
	current   models.IndicatorState
	published bool

	stream *broadcaster[models.IndicatorState]
	logger *logger.Logger
}

// NewSyncIndicator creates an indicator for group. Pending counts are
// refreshed every pollInterval once Run is called.
func NewSyncIndicator(
	group models.SyncGroup,
	dataSync DataSync,
	trigger SyncTrigger,
	thresholds IndicatorThresholds,
	pollInterval time.Duration,
	logger *logger.Logger,
) *SyncIndicator {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}

	return &SyncIndicator{
		group:        group,
		dataSync:     dataSync,
		trigger:      trigger,
		thresholds:   thresholds,
		pollInterval: pollInterval,
		now:          time.Now,
		current:      models.SyncPending,
		stream:       newBroadcaster[models.IndicatorState](),
		logger:       logger,
	}
}

// Stream subscribes to indicator changes. The current state is delivered
// first.
func (i *SyncIndicator) Stream() (<-chan models.IndicatorState, func()) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.published {
		return i.stream.Subscribe()
	}
	return i.stream.Subscribe(i.current)
}

// Current returns the last computed state.
func (i *SyncIndicator) Current() models.IndicatorState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current
}

// RequestSync starts a manual run of the group. It is ignored while a run
// is in flight. onError receives the first error of the run that should be
// shown to the user.
func (i *SyncIndicator) RequestSync(ctx context.Context, onError func(models.ResolvedError)) error {
	if i.Current().Kind == models.IndicatorSyncing {
		return nil
	}
	return i.trigger.RunNow(ctx, i.group, onError)
}

// Run loads the persisted state and keeps the indicator current until ctx
// is done.
func (i *SyncIndicator) Run(ctx context.Context) {
	results, unsubscribe := i.dataSync.StreamSyncResults()
	defer unsubscribe()

	i.reloadState(ctx)
	i.pollPending(ctx)

	refresh := time.NewTicker(refreshInterval)
	defer refresh.Stop()
	poll := time.NewTicker(i.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-results:
			if !ok {
				return
			}
			if result.Group != i.group {
				continue
			}
			i.applyResult(ctx, result)
		case <-refresh.C:
			i.recompute()
		case <-poll.C:
			i.pollPending(ctx)
		}
	}
}

func (i *SyncIndicator) applyResult(ctx context.Context, result models.SyncGroupResult) {
	if result.Progress == models.SyncProgressSyncing {
		i.mu.Lock()
		i.state.Group = i.group
		i.state.Progress = result.Progress
		i.mu.Unlock()
		i.recompute()
		return
	}

	// A finished run may have changed LastSuccessAt and the pending pool.
	i.reloadState(ctx)
	i.pollPending(ctx)
}

func (i *SyncIndicator) reloadState(ctx context.Context) {
	state, err := i.dataSync.LastSyncedState(ctx, i.group)
	if err != nil {
		i.logger.Error().Err(err).Str("sync_group", string(i.group)).Msg("failed to load last synced state")
		return
	}

	i.mu.Lock()
	i.state = state
	i.mu.Unlock()
	i.recompute()
}

func (i *SyncIndicator) pollPending(ctx context.Context) {
	counts, err := i.dataSync.PendingCounts(ctx, i.group)
	if err != nil {
		i.logger.Error().Err(err).Str("sync_group", string(i.group)).Msg("failed to count pending records")
		return
	}

	i.mu.Lock()
	i.pending = counts
	i.mu.Unlock()
	i.recompute()
}

// recompute derives the state and publishes it when it changed.
func (i *SyncIndicator) recompute() {
	i.mu.Lock()
	defer i.mu.Unlock()

	next := Derive(i.state, maps.Clone(i.pending), i.now(), i.thresholds)
	changed := !i.published || !sameDisplay(next, i.current)

	i.current = next
	if changed {
		i.published = true
		i.stream.Publish(next)
	}
}

// sameDisplay compares states at the resolution the user sees: Synced
// states differ only when the elapsed minute changes.
func sameDisplay(a, b models.IndicatorState) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind != models.IndicatorSynced {
		return true
	}
	return a.Elapsed/time.Minute == b.Elapsed/time.Minute
}
