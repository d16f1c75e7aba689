// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// job is one scheduled periodic sync.
type job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// tickOutcome tells the job loop what a tick did.
type tickOutcome int

const (
	tickRan tickOutcome = iota
	// tickBlocked means the constraints did not hold.
	tickBlocked
	// tickBusy means another run was in flight.
	tickBusy
)

// flight allows one run at a time. done is non-nil while a run is in flight
// and is closed when it finishes.
type flight struct {
	mu   sync.Mutex
	done chan struct{}
}

// start claims the flight. When another run holds it, start returns false
// and a channel closed once that run finishes.
func (f *flight) start() (bool, <-chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done != nil {
		return false, f.done
	}
	f.done = make(chan struct{})
	return true, nil
}

func (f *flight) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()

	close(f.done)
	f.done = nil
}

// SyncScheduler triggers orchestrator runs per sync group.
type SyncScheduler struct {
	dataSync    service.DataSync
	constraints Constraints

	intervals   map[models.SyncGroup]time.Duration
	backoffBase time.Duration
	backoffMax  time.Duration

	inFlight flight

	mu   sync.Mutex
	jobs map[string]*job

	logger *logger.Logger
}

// NewSyncScheduler builds a scheduler with the intervals and backoff of
// cfg. The FREQUENT group runs every SyncInterval and the DAILY group every
// DailySyncInterval.
func NewSyncScheduler(dataSync service.DataSync, constraints Constraints, cfg config.ClientWorkers, logger *logger.Logger) *SyncScheduler {
	return &SyncScheduler{
		dataSync:    dataSync,
		constraints: constraints,
		intervals: map[models.SyncGroup]time.Duration{
			models.SyncGroupFrequent: cfg.SyncInterval,
			models.SyncGroupDaily:    cfg.DailySyncInterval,
		},
		backoffBase: cfg.BackoffBase,
		backoffMax:  cfg.BackoffMax,
		jobs:        make(map[string]*job),
		logger:      logger,
	}
}

func jobKey(group models.SyncGroup) string {
	return "sync-" + string(group)
}

// Run schedules every group and blocks until ctx is done.
func (s *SyncScheduler) Run(ctx context.Context) {
	s.ScheduleRecurring(ctx)
	<-ctx.Done()
	s.CancelAll()
}

// ScheduleRecurring starts one periodic job per sync group. A group that is
// already scheduled has its job replaced.
func (s *SyncScheduler) ScheduleRecurring(ctx context.Context) {
	for _, group := range models.AllSyncGroups() {
		interval := s.intervals[group]
		if interval <= 0 {
			continue
		}
		s.schedule(ctx, group, interval)
	}
}

// RunNow runs group immediately, outside the periodic cadence. Constraints
// are not checked. onError, if set, receives the first error of the run
// unless it is an authentication failure.
func (s *SyncScheduler) RunNow(ctx context.Context, group models.SyncGroup, onError func(models.ResolvedError)) error {
	if ok, _ := s.inFlight.start(); !ok {
		return ErrSyncInFlight
	}
	defer s.inFlight.finish()

	result := s.dataSync.Run(ctx, group)
	if onError != nil {
		if e, ok := result.FirstError(); ok {
			onError(e)
		}
	}
	return nil
}

// CancelAll stops every periodic job and waits for them to exit. A run in
// progress stops at its next batch boundary.
func (s *SyncScheduler) CancelAll() {
	s.mu.Lock()
	jobs := s.jobs
	s.jobs = make(map[string]*job)
	s.mu.Unlock()

	for _, j := range jobs {
		j.cancel()
		<-j.done
	}
}

// Scheduled returns the keys of the running jobs.
func (s *SyncScheduler) Scheduled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.jobs))
	for key := range s.jobs {
		keys = append(keys, key)
	}
	return keys
}

func (s *SyncScheduler) schedule(ctx context.Context, group models.SyncGroup, interval time.Duration) {
	key := jobKey(group)
	jobCtx, cancel := context.WithCancel(ctx)
	next := &job{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	prev := s.jobs[key]
	s.jobs[key] = next
	s.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}

	go func() {
		defer close(next.done)
		s.loop(jobCtx, group, interval)
	}()

	s.logger.Info().Str("job", key).Dur("interval", interval).Msg("sync job scheduled")
}

// loop runs group right away and then every interval. After a failed run,
// or a tick the constraints blocked, the next delay comes from an
// exponential backoff that never exceeds the interval; a successful run
// resets it. A tick that finds another run in flight waits for that run to
// finish and tries again.
func (s *SyncScheduler) loop(ctx context.Context, group models.SyncGroup, interval time.Duration) {
	backoff := s.newBackoff(interval)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		progress, outcome, busy := s.tick(ctx, group)
		for outcome == tickBusy {
			select {
			case <-ctx.Done():
				return
			case <-busy:
			}
			progress, outcome, busy = s.tick(ctx, group)
		}

		delay := interval
		if outcome == tickBlocked || progress == models.SyncProgressFailure {
			if d, stop := backoff.Next(); !stop {
				delay = d
			}
		} else {
			backoff = s.newBackoff(interval)
		}

		timer.Reset(delay)
	}
}

// tick runs group unless the constraints fail or another run is in flight.
// In the latter case the returned channel is closed when that run finishes.
func (s *SyncScheduler) tick(ctx context.Context, group models.SyncGroup) (models.SyncProgress, tickOutcome, <-chan struct{}) {
	log := s.logger.WithStr("sync_group", string(group))

	if !s.constraints.Satisfied(ctx) {
		log.Debug().Msg("constraints not met, periodic sync postponed")
		return "", tickBlocked, nil
	}
	ok, busy := s.inFlight.start()
	if !ok {
		log.Debug().Msg("sync in flight, periodic sync queued")
		return "", tickBusy, busy
	}
	defer s.inFlight.finish()

	return s.dataSync.Run(ctx, group).Progress, tickRan, nil
}

func (s *SyncScheduler) newBackoff(interval time.Duration) retry.Backoff {
	base := s.backoffBase
	if base <= 0 {
		base = interval
	}
	capped := min(max(s.backoffMax, base), interval)

	return retry.WithCappedDuration(capped, retry.NewExponential(base))
}
