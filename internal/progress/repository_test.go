package progress

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewDBRepository(sqlx.NewDb(db, "sqlite3")), mock
}

func TestDBRepository_Fetch(t *testing.T) {
	attempted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		problemID int64
		setupMock func(mock sqlmock.Sqlmock)
		want      *Record
		wantErr   bool
	}{
		{
			name:      "returns the record",
			problemID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"problem_id", "last_attempted", "attempt_rating", "next_attempt_date", "number_of_attempts",
				}).AddRow(1, attempted, "Easy", next, 3)
				mock.ExpectQuery(`SELECT \* FROM progress WHERE problem_id = \?`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			want: &Record{
				ProblemID:        1,
				LastAttempted:    attempted,
				AttemptRating:    RatingEasy,
				NextAttemptDate:  sql.NullTime{Time: next, Valid: true},
				NumberOfAttempts: 3,
			},
		},
		{
			name:      "returns nil when the problem has never been attempted",
			problemID: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM progress WHERE problem_id = \?`).
					WithArgs(int64(2)).
					WillReturnError(sql.ErrNoRows)
			},
			want: nil,
		},
		{
			name:      "db error",
			problemID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM progress WHERE problem_id = \?`).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.Fetch(context.Background(), tt.problemID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_AddOrReplace(t *testing.T) {
	record := Record{
		ProblemID:        1,
		LastAttempted:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AttemptRating:    RatingHard,
		NextAttemptDate:  sql.NullTime{Time: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Valid: true},
		NumberOfAttempts: 1,
	}

	t.Run("writes all fields as dates", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT OR REPLACE INTO progress`).
			WithArgs(int64(1), "2025-06-01", string(RatingHard), "2025-06-05", int64(1)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.AddOrReplace(context.Background(), &record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("writes NULL for a missing next attempt date", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		withoutNext := record
		withoutNext.NextAttemptDate = sql.NullTime{}
		mock.ExpectExec(`INSERT OR REPLACE INTO progress`).
			WithArgs(int64(1), "2025-06-01", string(RatingHard), nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.AddOrReplace(context.Background(), &withoutNext))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`INSERT OR REPLACE INTO progress`).
			WillReturnError(fmt.Errorf("database is locked"))

		assert.Error(t, repo.AddOrReplace(context.Background(), &record))
	})
}

func TestDBRepository_Update(t *testing.T) {
	record := Record{
		ProblemID:        1,
		LastAttempted:    time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		AttemptRating:    RatingEasy,
		NextAttemptDate:  sql.NullTime{Time: time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), Valid: true},
		NumberOfAttempts: 2,
	}

	t.Run("updates by problem id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`UPDATE progress`).
			WithArgs("2025-06-03", string(RatingEasy), "2025-06-17", int64(2), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), &record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(`UPDATE progress`).
			WillReturnError(fmt.Errorf("database is locked"))

		assert.Error(t, repo.Update(context.Background(), &record))
	})
}

func TestDBRepository_FindAll(t *testing.T) {
	attempted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns every record", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := sqlmock.NewRows([]string{
			"problem_id", "last_attempted", "attempt_rating", "next_attempt_date", "number_of_attempts",
		}).
			AddRow(1, attempted, "Easy", attempted.AddDate(0, 0, 7), 1).
			AddRow(2, attempted, "ShortFail", nil, 2)
		mock.ExpectQuery(`SELECT \* FROM progress ORDER BY problem_id`).WillReturnRows(rows)

		got, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, RatingEasy, got[0].AttemptRating)
		assert.True(t, got[0].NextAttemptDate.Valid)
		assert.Equal(t, RatingShortFail, got[1].AttemptRating)
		assert.False(t, got[1].NextAttemptDate.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM progress ORDER BY problem_id`).
			WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.FindAll(context.Background())
		assert.Error(t, err)
	})
}
