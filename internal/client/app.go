package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/session"
	"github.com/MKhiriev/go-sync-keeper/internal/workers"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// SessionManager is the part of the user session the runtime drives.
type SessionManager interface {
	Restore(ctx context.Context) error
	Expired() <-chan struct{}
}

type App struct {
	services   *service.ClientServices
	session    SessionManager
	scheduler  *workers.SyncScheduler
	indicators map[models.SyncGroup]*service.SyncIndicator

	logger *logger.Logger
}

// NewApp builds the sync scheduler and one status indicator per sync group
// on top of services. Periodic runs require the sync server to answer
// pinger.
func NewApp(services *service.ClientServices, sess SessionManager, pinger workers.Pinger, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || services.DataSync == nil {
		return nil, errors.New("client services are not initialized")
	}

	constraints := workers.NewDeviceConstraints(pinger, workers.SysfsPowerSource{}, cfg.Adapter.RequestTimeout, logger)
	scheduler := workers.NewSyncScheduler(services.DataSync, constraints, cfg.Workers, logger)

	thresholds := service.NewIndicatorThresholds(cfg.Indicator)
	indicators := make(map[models.SyncGroup]*service.SyncIndicator)
	for _, group := range models.AllSyncGroups() {
		indicators[group] = service.NewSyncIndicator(group, services.DataSync, scheduler, thresholds, cfg.Workers.PendingPollInterval, logger)
	}

	return &App{
		services:   services,
		session:    sess,
		scheduler:  scheduler,
		indicators: indicators,
		logger:     logger,
	}, nil
}

// Indicator returns the status indicator of group.
func (a *App) Indicator(group models.SyncGroup) *service.SyncIndicator {
	return a.indicators[group]
}

// Run restores the stored session and runs the background sync until ctx is
// done. A missing session is not fatal: runs skip units needing an approved
// identity until the user signs in.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			return fmt.Errorf("restore session: %w", err)
		}
		a.logger.Warn().Msg(app.MsgUnauthenticated)
	}

	background := []workers.Worker{
		a.scheduler,
		workers.WorkerFunc(a.watchSession),
		workers.WorkerFunc(a.logSyncErrors),
	}
	for group, indicator := range a.indicators {
		background = append(background, indicator, a.logIndicator(group, indicator))
	}

	w := workers.NewWorkers(background...)
	w.Run(ctx)
	a.logger.Info().Int("units", len(a.services.Units)).Msg("sync started")

	<-ctx.Done()
	w.Wait()
	a.logger.Info().Msg("sync stopped")

	return nil
}

func (a *App) watchSession(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.session.Expired():
			a.logger.Warn().Msg(app.MsgUnauthenticated)
		}
	}
}

func (a *App) logSyncErrors(ctx context.Context) {
	errs, unsubscribe := a.services.DataSync.StreamSyncErrors()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-errs:
			if !ok {
				return
			}
			a.logger.Info().
				Str("entity", e.Entity).
				Str("kind", string(e.Kind)).
				Msg(app.MessageFor(e.Kind))
		}
	}
}

func (a *App) logIndicator(group models.SyncGroup, indicator *service.SyncIndicator) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) {
		states, unsubscribe := indicator.Stream()
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case state, ok := <-states:
				if !ok {
					return
				}
				a.logger.Info().
					Str("group", string(group)).
					Str("status", state.String()).
					Msg("sync status")
			}
		}
	})
}
