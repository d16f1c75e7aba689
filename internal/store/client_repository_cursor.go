package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type cursorRepository struct {
	*DB
	logger *logger.Logger
}

// NewCursorRepository returns the SQLite-backed [CursorRepository].
func NewCursorRepository(db *DB, logger *logger.Logger) CursorRepository {
	return &cursorRepository{DB: db, logger: logger}
}

func (c *cursorRepository) GetCursor(ctx context.Context, entity string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("token").From(pullCursorsTable).Where(sq.Eq{"entity": entity}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "cursorRepository.GetCursor").
			Str("entity", entity).
			Msg("failed to read pull cursor")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (c *cursorRepository) SetCursor(ctx context.Context, entity, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(pullCursorsTable).
		Columns("entity", "token").
		Values(entity, token).
		Suffix("ON CONFLICT(entity) DO UPDATE SET token = excluded.token").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := c.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "cursorRepository.SetCursor").
			Str("entity", entity).
			Msg("failed to store pull cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
