package service

import (
	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

// ClientServices aggregates the sync units of the client and the
// orchestrator running them.
type ClientServices struct {
	Units    []ModelSync
	DataSync DataSync
}

// NewClientServices builds one sync unit per synchronized entity on top of
// storages and the orchestrator over all of them.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	session UserSession,
	reporter CrashReporter,
	cfg config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	units := []ModelSync{
		NewPatientSync(storages.Patients, storages.Cursors, serverAdapter, cfg.Sync),
		NewBloodPressureSync(storages.BloodPressures, storages.Cursors, serverAdapter, cfg.Sync),
		NewFacilitySync(storages.Facilities, storages.Cursors, serverAdapter, cfg.Sync),
	}

	return &ClientServices{
		Units:    units,
		DataSync: NewDataSync(units, session, reporter, storages.LastSyncedStates, cfg.Workers.MaxParallelSyncs, logger),
	}
}
