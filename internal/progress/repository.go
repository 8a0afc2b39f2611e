package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const dateLayout = "2006-01-02"

// Repository defines operations for managing progress records.
type Repository interface {
	Fetch(ctx context.Context, problemID int64) (*Record, error)
	AddOrReplace(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	FindAll(ctx context.Context) ([]Record, error)
}

// DBRepository implements Repository using SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Fetch returns the progress record for a problem, or nil if the
// problem has never been attempted.
func (r *DBRepository) Fetch(ctx context.Context, problemID int64) (*Record, error) {
	var record Record
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM progress WHERE problem_id = ?", problemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(progress for problem %d) > %w", problemID, err)
	}
	return &record, nil
}

// AddOrReplace writes a record, replacing any existing row so the
// one-row-per-problem invariant holds.
func (r *DBRepository) AddOrReplace(ctx context.Context, record *Record) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO progress (problem_id, last_attempted, attempt_rating, next_attempt_date, number_of_attempts)
		VALUES (?, ?, ?, ?, ?)`,
		record.ProblemID,
		dateArg(record.LastAttempted),
		record.AttemptRating,
		nullDateArg(record.NextAttemptDate),
		record.NumberOfAttempts,
	); err != nil {
		return fmt.Errorf("db.ExecContext(replace progress for problem %d) > %w", record.ProblemID, err)
	}
	return nil
}

// Update overwrites the record of an already-attempted problem.
func (r *DBRepository) Update(ctx context.Context, record *Record) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE progress
		SET last_attempted = ?, attempt_rating = ?, next_attempt_date = ?, number_of_attempts = ?
		WHERE problem_id = ?`,
		dateArg(record.LastAttempted),
		record.AttemptRating,
		nullDateArg(record.NextAttemptDate),
		record.NumberOfAttempts,
		record.ProblemID,
	); err != nil {
		return fmt.Errorf("db.ExecContext(update progress for problem %d) > %w", record.ProblemID, err)
	}
	return nil
}

// FindAll returns every progress record, keyed for overview displays.
func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM progress ORDER BY problem_id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(progress) > %w", err)
	}
	return records, nil
}

// Dates are persisted as YYYY-MM-DD text so the DATE columns stay
// readable and comparable with date() in SQL.
func dateArg(t time.Time) string {
	return t.Format(dateLayout)
}

func nullDateArg(t sql.NullTime) interface{} {
	if !t.Valid {
		return nil
	}
	return t.Time.Format(dateLayout)
}
