package workers

import "errors"

// ErrSyncInFlight is returned by [SyncScheduler.RunNow] while another run
// is in progress.
var ErrSyncInFlight = errors.New("a sync run is already in flight")
