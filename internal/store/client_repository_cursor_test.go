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

func TestCursorRepository_GetCursor(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		want     string
		wantErr  error
	}{
		{
			name: "stored token",
			rows: sqlmock.NewRows([]string{"token"}).AddRow("tok-42"),
			want: "tok-42",
		},
		{
			name: "no row yields empty token",
			rows: sqlmock.NewRows([]string{"token"}),
			want: "",
		},
		{
			name:     "query error",
			queryErr: errors.New("boom"),
			wantErr:  ErrExecutingQuery,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewCursorRepository(newDBFromSQL(db), logger.Nop())

			exp := mock.ExpectQuery(regexp.QuoteMeta(`SELECT token FROM pull_cursors WHERE entity = ?`)).WithArgs("patients")
			if tc.queryErr != nil {
				exp.WillReturnError(tc.queryErr)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			got, err := repo.GetCursor(testContext(), "patients")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCursorRepository_SetCursor(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCursorRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pull_cursors (entity,token) VALUES (?,?) ON CONFLICT(entity) DO UPDATE SET token = excluded.token`)).
		WithArgs("patients", "tok-43").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetCursor(testContext(), "patients", "tok-43"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorRepository_SetCursor_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCursorRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pull_cursors`)).WillReturnError(errors.New("read-only database"))

	err := repo.SetCursor(testContext(), "patients", "tok")
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}
