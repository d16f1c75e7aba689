package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// upsertChunkSize bounds the rows of one multi-row INSERT so the statement
// stays under SQLite's host parameter limit.
const upsertChunkSize = 100

// idChunkSize bounds the ids of one IN clause.
const idChunkSize = 500

type recordRepository struct {
	*DB
	entity string
	logger *logger.Logger
}

// NewRecordRepository returns a [RecordRepository] scoped to entity.
func NewRecordRepository(db *DB, entity string, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		entity: entity,
		logger: logger,
	}
}

func (r *recordRepository) Entity() string {
	return r.entity
}

func (r *recordRepository) FetchByStatus(ctx context.Context, status models.SyncStatus, limit, offset int) ([]rawRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFetchByStatusQuery(r.entity, status, limit, offset)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchByStatus").
			Str("entity", r.entity).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.FetchByStatus").
			Str("entity", r.entity).
			Str("sync_status", string(status)).
			Msg("failed to execute query for fetching records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]rawRecord, 0, limit)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.FetchByStatus").
				Str("entity", r.entity).
				Msg("failed to scan sync record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.FetchByStatus").
			Str("entity", r.entity).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *recordRepository) Get(ctx context.Context, id string) (rawRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.entity, id)
	if err != nil {
		return rawRecord{}, err
	}

	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return rawRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Get").
			Str("entity", r.entity).
			Str("id", id).
			Msg("failed to scan sync record row")
		return rawRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *recordRepository) Save(ctx context.Context, records ...rawRecord) error {
	return r.upsert(ctx, "recordRepository.Save", records, models.SyncStatusPending, saveConflictClause)
}

func (r *recordRepository) Merge(ctx context.Context, records ...rawRecord) error {
	return r.upsert(ctx, "recordRepository.Merge", records, models.SyncStatusDone, mergeConflictClause)
}

func (r *recordRepository) upsert(ctx context.Context, funcName string, records []rawRecord, status models.SyncStatus, conflictClause string) error {
	if len(records) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	now := time.Now().UTC()
	records = slices.Clone(records)
	for i := range records {
		records[i].SyncStatus = status
		if records[i].ID == "" {
			return ErrEmptyRecordID
		}
		if records[i].CreatedAt.IsZero() {
			records[i].CreatedAt = now
		}
		if records[i].UpdatedAt.IsZero() {
			records[i].UpdatedAt = now
		}
	}

	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for start := 0; start < len(records); start += upsertChunkSize {
			end := min(start+upsertChunkSize, len(records))

			query, args, err := buildUpsertRecordsQuery(r.entity, records[start:end], conflictClause)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("entity", r.entity).
			Int("records", len(records)).
			Msg("failed to upsert sync records")
		return err
	}

	return nil
}

func (r *recordRepository) SetSyncStatus(ctx context.Context, from, to models.SyncStatus) error {
	if !to.Valid() || !from.Valid() {
		return ErrInvalidSyncStatus
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSetSyncStatusQuery(r.entity, from, to)
	if err != nil {
		return err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SetSyncStatus").
			Str("entity", r.entity).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("failed to update sync status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordRepository) SetSyncStatusForIDs(ctx context.Context, ids []string, to models.SyncStatus) error {
	if !to.Valid() {
		return ErrInvalidSyncStatus
	}
	if len(ids) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for start := 0; start < len(ids); start += idChunkSize {
			end := min(start+idChunkSize, len(ids))

			query, args, err := buildSetSyncStatusForIDsQuery(r.entity, ids[start:end], to)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SetSyncStatusForIDs").
			Str("entity", r.entity).
			Int("ids", len(ids)).
			Str("to", string(to)).
			Msg("failed to update sync status for ids")
		return err
	}

	return nil
}

func (r *recordRepository) CountByStatus(ctx context.Context, status models.SyncStatus) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStatusQuery(r.entity, status)
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "recordRepository.CountByStatus").
			Str("entity", r.entity).
			Str("sync_status", string(status)).
			Msg("failed to count sync records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (rawRecord, error) {
	var (
		record    rawRecord
		payload   []byte
		status    string
		createdAt int64
		updatedAt int64
	)

	if err := row.Scan(&record.ID, &payload, &status, &createdAt, &updatedAt); err != nil {
		return rawRecord{}, err
	}

	syncStatus, err := models.ParseSyncStatus(status)
	if err != nil {
		return rawRecord{}, err
	}

	record.Payload = json.RawMessage(payload)
	record.SyncStatus = syncStatus
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return record, nil
}
