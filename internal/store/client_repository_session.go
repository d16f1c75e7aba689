package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// sessionRowID is the only row of the session table.
const sessionRowID = 1

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (s *sessionRepository) GetSession(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("token").From(sessionTable).Where(sq.Eq{"id": sessionRowID}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to read session")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sessionRepository) SaveSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(sessionTable).
		Columns("id", "token", "updated_at").
		Values(sessionRowID, token, time.Now().UnixMilli()).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to store session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(sessionTable).Where(sq.Eq{"id": sessionRowID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
