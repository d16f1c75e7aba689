// Package telemetry forwards client defects to Sentry.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const flushTimeout = 2 * time.Second

// hub is the part of *sentry.Hub the reporter uses.
type hub interface {
	WithScope(f func(scope *sentry.Scope))
	CaptureException(exception error) *sentry.EventID
	Flush(timeout time.Duration) bool
}

// Reporter sends errors to Sentry, tagged with the sync run they came from.
type Reporter struct {
	hub    hub
	logger *logger.Logger
}

// CrashReporter reports errors that indicate a client defect.
type CrashReporter interface {
	Report(ctx context.Context, err error)
	// Close flushes pending reports.
	Close()
}

// NopReporter drops every error. It is used when no DSN is configured.
type NopReporter struct{}

func (NopReporter) Report(context.Context, error) {}

func (NopReporter) Close() {}

// NewReporter returns a Sentry reporter, or a [NopReporter] when
// cfg.SentryDSN is empty.
func NewReporter(cfg config.ClientTelemetry, app config.ClientApp, logger *logger.Logger) (CrashReporter, error) {
	if cfg.SentryDSN == "" {
		return NopReporter{}, nil
	}

	return newSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     app.Version,
	}, logger)
}

func newSentryReporter(opts sentry.ClientOptions, logger *logger.Logger) (*Reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("error creating sentry client: %w", err)
	}

	return &Reporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger,
	}, nil
}

// Report sends err with the run id of ctx and, for classified sync errors,
// the entity and error kind as tags.
func (r *Reporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		if runID, ok := utils.GetRunIDFromContext(ctx); ok {
			scope.SetTag("run_id", runID)
		}

		var resolved models.ResolvedError
		if errors.As(err, &resolved) {
			scope.SetTag("error_kind", string(resolved.Kind))
			if resolved.Entity != "" {
				scope.SetTag("entity", resolved.Entity)
			}
		}

		if id := r.hub.CaptureException(err); id != nil {
			r.logger.Debug().Str("event_id", string(*id)).Msg("error reported")
		}
	})
}

// Close flushes buffered events.
func (r *Reporter) Close() {
	if !r.hub.Flush(flushTimeout) {
		r.logger.Warn().Msg("sentry flush timed out")
	}
}
