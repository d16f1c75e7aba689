package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type lastSyncedStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewLastSyncedStateRepository returns the SQLite-backed
// [LastSyncedStateRepository].
func NewLastSyncedStateRepository(db *DB, logger *logger.Logger) LastSyncedStateRepository {
	return &lastSyncedStateRepository{DB: db, logger: logger}
}

func (l *lastSyncedStateRepository) GetLastSyncedState(ctx context.Context, group models.SyncGroup) (models.LastSyncedState, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("progress", "last_success_at").
		From(lastSyncedStatesTable).
		Where(sq.Eq{"sync_group": string(group)}).
		ToSql()
	if err != nil {
		return models.LastSyncedState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		progress      string
		lastSuccessAt sql.NullInt64
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&progress, &lastSuccessAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LastSyncedState{Group: group}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "lastSyncedStateRepository.GetLastSyncedState").
			Str("sync_group", string(group)).
			Msg("failed to read last synced state")
		return models.LastSyncedState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state := models.LastSyncedState{
		Group:    group,
		Progress: models.SyncProgress(progress),
	}
	if lastSuccessAt.Valid {
		at := time.UnixMilli(lastSuccessAt.Int64).UTC()
		state.LastSuccessAt = &at
	}

	return state, nil
}

func (l *lastSyncedStateRepository) SaveLastSyncedState(ctx context.Context, state models.LastSyncedState) error {
	log := logger.FromContext(ctx)

	var lastSuccessAt sql.NullInt64
	if state.LastSuccessAt != nil {
		lastSuccessAt = sql.NullInt64{Int64: state.LastSuccessAt.UnixMilli(), Valid: true}
	}

	query, args, err := psql.
		Insert(lastSyncedStatesTable).
		Columns("sync_group", "progress", "last_success_at").
		Values(string(state.Group), string(state.Progress), lastSuccessAt).
		Suffix("ON CONFLICT(sync_group) DO UPDATE SET progress = excluded.progress, last_success_at = excluded.last_success_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = l.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := l.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "lastSyncedStateRepository.SaveLastSyncedState").
			Str("sync_group", string(state.Group)).
			Str("progress", string(state.Progress)).
			Msg("failed to store last synced state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
