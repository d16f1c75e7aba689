package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/session"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
	"golang.org/x/sync/errgroup"
)

type idGenerator interface {
	Generate() string
}

type dataSync struct {
	units       []ModelSync
	session     UserSession
	reporter    CrashReporter
	states      store.LastSyncedStateRepository
	maxParallel int

	ids          idGenerator
	now          func() time.Time
	resultStream *broadcaster[models.SyncGroupResult]
	errorStream  *broadcaster[models.ResolvedError]

	logger *logger.Logger
}

// NewDataSync creates the orchestrator for units. At most maxParallel units
// of one group sync at the same time.
func NewDataSync(
	units []ModelSync,
	session UserSession,
	reporter CrashReporter,
	states store.LastSyncedStateRepository,
	maxParallel int,
	logger *logger.Logger,
) DataSync {
	if maxParallel < 1 {
		maxParallel = 1
	}

	return &dataSync{
		units:        units,
		session:      session,
		reporter:     reporter,
		states:       states,
		maxParallel:  maxParallel,
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		resultStream: newBroadcaster[models.SyncGroupResult](),
		errorStream:  newBroadcaster[models.ResolvedError](),
		logger:       logger,
	}
}

func (d *dataSync) StreamSyncResults() (<-chan models.SyncGroupResult, func()) {
	return d.resultStream.Subscribe()
}

func (d *dataSync) StreamSyncErrors() (<-chan models.ResolvedError, func()) {
	return d.errorStream.Subscribe()
}

func (d *dataSync) LastSyncedState(ctx context.Context, group models.SyncGroup) (models.LastSyncedState, error) {
	return d.states.GetLastSyncedState(ctx, group)
}

func (d *dataSync) PendingCounts(ctx context.Context, group models.SyncGroup) (map[string]int, error) {
	counts := make(map[string]int)
	for _, unit := range d.unitsOf(group) {
		n, err := unit.PendingSyncRecordCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count pending %s records: %w", unit.Name(), err)
		}
		counts[unit.Name()] = n
	}
	return counts, nil
}

func (d *dataSync) Run(ctx context.Context, group models.SyncGroup) models.SyncGroupResult {
	runID := d.ids.Generate()
	log := d.logger.
		WithStr("run_id", runID).
		WithStr("sync_group", string(group))
	ctx = log.WithContext(utils.WithRunID(ctx, runID))

	result := models.SyncGroupResult{RunID: runID, Group: group, Progress: models.SyncProgressSyncing}
	d.saveState(ctx, group, models.SyncProgressSyncing)
	d.resultStream.Publish(result)

	log.Info().Msg("sync started")

	units, gateErr := d.approvedUnits(ctx, group)
	if gateErr != nil {
		result.Errors = append(result.Errors, *gateErr)
	}

	result.Errors = append(result.Errors, d.syncUnits(ctx, units)...)

	d.routeErrors(ctx, result.Errors)

	result.Progress = models.SyncProgressSuccess
	if len(result.Errors) > 0 {
		result.Progress = models.SyncProgressFailure
	}
	d.saveState(ctx, group, result.Progress)
	d.resultStream.Publish(result)

	log.Info().
		Str("progress", string(result.Progress)).
		Int("units", len(units)).
		Int("errors", len(result.Errors)).
		Msg("sync finished")

	return result
}

// approvedUnits returns the units of group that may sync now. Units that
// need an approved user are skipped while nobody is signed in or the user is
// not approved; that is not a failure. A failed approval lookup is.
func (d *dataSync) approvedUnits(ctx context.Context, group models.SyncGroup) ([]ModelSync, *models.ResolvedError) {
	all := d.unitsOf(group)

	needsApproval := false
	for _, unit := range all {
		if unit.RequiresApprovedIdentity() {
			needsApproval = true
			break
		}
	}
	if !needsApproval {
		return all, nil
	}

	approved, err := d.session.CanSyncData(ctx)
	var gateErr *models.ResolvedError
	switch {
	case errors.Is(err, session.ErrNoSession):
		approved = false
	case err != nil:
		resolved := ResolveError("", fmt.Errorf("check sync approval: %w", err))
		gateErr = &resolved
	}

	units := make([]ModelSync, 0, len(all))
	for _, unit := range all {
		if unit.RequiresApprovedIdentity() && !approved {
			logger.FromContext(ctx).Debug().Str("entity", unit.Name()).Msg("skipping unit: user not approved")
			continue
		}
		units = append(units, unit)
	}

	return units, gateErr
}

func (d *dataSync) syncUnits(ctx context.Context, units []ModelSync) []models.ResolvedError {
	var (
		mu     sync.Mutex
		errs   []models.ResolvedError
		g      errgroup.Group
		record = func(resolved []models.ResolvedError) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, resolved...)
		}
	)
	g.SetLimit(d.maxParallel)

	for _, unit := range units {
		g.Go(func() error {
			record(syncUnit(ctx, unit))
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// syncUnit runs push then pull. The pull runs even when the push failed: a
// rejected push must not keep server changes from reaching the device.
func syncUnit(ctx context.Context, unit ModelSync) []models.ResolvedError {
	var errs []models.ResolvedError

	if err := guard(func() error { return unit.Push(ctx) }); err != nil {
		errs = append(errs, ResolveError(unit.Name(), fmt.Errorf("push: %w", err)))
	}
	if err := guard(func() error { return unit.Pull(ctx) }); err != nil {
		errs = append(errs, ResolveError(unit.Name(), fmt.Errorf("pull: %w", err)))
	}

	return errs
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnitPanicked, r)
		}
	}()
	return fn()
}

func (d *dataSync) routeErrors(ctx context.Context, errs []models.ResolvedError) {
	log := logger.FromContext(ctx)
	expired := false

	for _, e := range errs {
		d.errorStream.Publish(e)

		event := log.Warn()
		switch e.Kind {
		case models.ErrorKindUnexpected:
			event = log.Error()
			d.reporter.Report(ctx, e)
		case models.ErrorKindUnauthenticated:
			event = log.Info()
			if !expired {
				expired = true
				if err := d.session.Expire(ctx); err != nil {
					log.Error().Err(err).Msg("failed to expire session")
				}
			}
		}

		event.
			Err(e.Cause).
			Str("entity", e.Entity).
			Str("error_kind", string(e.Kind)).
			Msg("sync error")
	}
}

func (d *dataSync) saveState(ctx context.Context, group models.SyncGroup, progress models.SyncProgress) {
	state, err := d.states.GetLastSyncedState(ctx, group)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to read last synced state")
		state = models.LastSyncedState{}
	}

	state.Group = group
	state.Progress = progress
	if progress == models.SyncProgressSuccess {
		now := d.now().UTC()
		state.LastSuccessAt = &now
	}

	if err = d.states.SaveLastSyncedState(ctx, state); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to save last synced state")
	}
}

func (d *dataSync) unitsOf(group models.SyncGroup) []ModelSync {
	var units []ModelSync
	for _, unit := range d.units {
		if unit.SyncConfig().Group == group {
			units = append(units, unit)
		}
	}
	return units
}
