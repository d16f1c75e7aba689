package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	syncRecordsTable      = "sync_records"
	pullCursorsTable      = "pull_cursors"
	lastSyncedStatesTable = "last_synced_states"
	sessionTable          = "session"
)

var syncRecordColumns = []string{
	"id", "payload", "sync_status", "created_at", "updated_at",
}

// mergeConflictClause overwrites a stored record with the server copy unless
// the local copy has unsent changes.
const mergeConflictClause = `ON CONFLICT(entity, id) DO UPDATE SET
		payload = excluded.payload,
		sync_status = excluded.sync_status,
		updated_at = excluded.updated_at
	WHERE sync_records.sync_status <> 'PENDING'`

// saveConflictClause marks a locally edited record PENDING and keeps
// updated_at from moving backwards.
const saveConflictClause = `ON CONFLICT(entity, id) DO UPDATE SET
		payload = excluded.payload,
		sync_status = 'PENDING',
		updated_at = MAX(excluded.updated_at, sync_records.updated_at)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildFetchByStatusQuery selects one page of records of entity in the given
// status, ordered by (updated_at, id).
func buildFetchByStatusQuery(entity string, status models.SyncStatus, limit, offset int) (string, []any, error) {
	query, args, err := psql.
		Select(syncRecordColumns...).
		From(syncRecordsTable).
		Where(sq.Eq{"entity": entity, "sync_status": string(status)}).
		OrderBy("updated_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetRecordQuery(entity, id string) (string, []any, error) {
	query, args, err := psql.
		Select(syncRecordColumns...).
		From(syncRecordsTable).
		Where(sq.Eq{"entity": entity, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertRecordsQuery builds a multi-row INSERT for records of entity.
// conflictClause decides what happens to rows that already exist.
func buildUpsertRecordsQuery(entity string, records []rawRecord, conflictClause string) (string, []any, error) {
	builder := psql.
		Insert(syncRecordsTable).
		Columns("entity", "id", "payload", "sync_status", "created_at", "updated_at")

	for _, r := range records {
		builder = builder.Values(
			entity,
			r.ID,
			[]byte(r.Payload),
			string(r.SyncStatus),
			r.CreatedAt.UnixMilli(),
			r.UpdatedAt.UnixMilli(),
		)
	}

	query, args, err := builder.Suffix(conflictClause).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetSyncStatusQuery(entity string, from, to models.SyncStatus) (string, []any, error) {
	query, args, err := psql.
		Update(syncRecordsTable).
		Set("sync_status", string(to)).
		Where(sq.Eq{"entity": entity, "sync_status": string(from)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetSyncStatusForIDsQuery(entity string, ids []string, to models.SyncStatus) (string, []any, error) {
	query, args, err := psql.
		Update(syncRecordsTable).
		Set("sync_status", string(to)).
		Where(sq.Eq{"entity": entity, "id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCountByStatusQuery(entity string, status models.SyncStatus) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(syncRecordsTable).
		Where(sq.Eq{"entity": entity, "sync_status": string(status)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
