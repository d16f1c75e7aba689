// Package workers runs the background work of the client: periodic sync
// jobs and anything else that lives until shutdown.
//
// [SyncScheduler] decides when a sync group runs: on a per-group interval,
// only while [Constraints] hold, with exponential backoff after failures
// and never two runs at once. [Workers] starts a set of [Worker]s and waits
// for them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) { f(ctx) }
