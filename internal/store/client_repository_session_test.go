package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

func TestSessionRepository_GetSession(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT token FROM session WHERE id = ?`)).
			WithArgs(sessionRowID).
			WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("jwt"))

		token, err := repo.GetSession(testContext())
		require.NoError(t, err)
		assert.Equal(t, "jwt", token)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT token FROM session`)).
			WillReturnRows(sqlmock.NewRows([]string{"token"}))

		_, err := repo.GetSession(testContext())
		require.ErrorIs(t, err, ErrLocalSessionNotFound)
	})
}

func TestSessionRepository_SaveAndClear(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session (id,token,updated_at) VALUES (?,?,?) ON CONFLICT(id)`)).
		WithArgs(sessionRowID, "jwt", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM session WHERE id = ?`)).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveSession(testContext(), "jwt"))
	require.NoError(t, repo.ClearSession(testContext()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ClearSession_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM session`)).WillReturnError(errors.New("boom"))

	require.ErrorIs(t, repo.ClearSession(testContext()), ErrExecutingStatement)
}
