package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Entity names of the reference units. They double as the path segment of
// the sync endpoints.
const (
	EntityPatients       = "patients"
	EntityBloodPressures = "blood_pressures"
	EntityFacilities     = "facilities"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	Patients       *Records[models.Patient]
	BloodPressures *Records[models.BloodPressure]
	Facilities     *Records[models.Facility]

	Cursors          CursorRepository
	LastSyncedStates LastSyncedStateRepository
	Sessions         SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Patients:         NewRecords[models.Patient](NewRecordRepository(db, EntityPatients, logger)),
		BloodPressures:   NewRecords[models.BloodPressure](NewRecordRepository(db, EntityBloodPressures, logger)),
		Facilities:       NewRecords[models.Facility](NewRecordRepository(db, EntityFacilities, logger)),
		Cursors:          NewCursorRepository(db, logger),
		LastSyncedStates: NewLastSyncedStateRepository(db, logger),
		Sessions:         NewSessionRepository(db, logger),
		db:               db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
