package problem

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DueProblem is a problem joined with the review date that made it due.
type DueProblem struct {
	Problem
	NextAttemptDate time.Time `db:"next_attempt_date"`
}

// Repository defines operations for managing problems.
type Repository interface {
	Insert(ctx context.Context, p *Problem) error
	FindByID(ctx context.Context, id int64) (*Problem, error)
	FindAll(ctx context.Context) ([]Problem, error)
	NextUnattempted(ctx context.Context) (*Problem, error)
	FindDue(ctx context.Context, asOf time.Time) ([]DueProblem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// DBRepository implements Repository using SQLite.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Insert adds a problem, leaving any existing row with the same id
// untouched so that re-importing a bank never clobbers earlier data.
func (r *DBRepository) Insert(ctx context.Context, p *Problem) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO problems (id, "order", name, difficulty, week) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Order, p.Name, p.Difficulty, p.Week); err != nil {
		return fmt.Errorf("db.ExecContext(insert problem %q) > %w", p.Name, err)
	}
	return nil
}

// FindByID returns the problem with the given id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id int64) (*Problem, error) {
	var p Problem
	err := r.db.GetContext(ctx, &p, "SELECT * FROM problems WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(problem %d) > %w", id, err)
	}
	return &p, nil
}

// FindAll returns all problems in curated-list order.
func (r *DBRepository) FindAll(ctx context.Context) ([]Problem, error) {
	var problems []Problem
	if err := r.db.SelectContext(ctx, &problems,
		`SELECT * FROM problems ORDER BY "order"`); err != nil {
		return nil, fmt.Errorf("db.SelectContext(problems) > %w", err)
	}
	return problems, nil
}

// NextUnattempted returns the lowest-ordered problem without a progress
// row, or nil when every problem has been attempted.
func (r *DBRepository) NextUnattempted(ctx context.Context) (*Problem, error) {
	var p Problem
	err := r.db.GetContext(ctx, &p,
		`SELECT p.id, p."order", p.name, p.difficulty, p.week
		FROM problems p
		LEFT JOIN progress pr ON p.id = pr.problem_id
		WHERE pr.problem_id IS NULL
		ORDER BY p."order" ASC
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(next unattempted problem) > %w", err)
	}
	return &p, nil
}

// FindDue returns attempted problems whose next attempt date falls on
// or before the given day, soonest first.
func (r *DBRepository) FindDue(ctx context.Context, asOf time.Time) ([]DueProblem, error) {
	var due []DueProblem
	if err := r.db.SelectContext(ctx, &due,
		`SELECT p.id, p."order", p.name, p.difficulty, p.week, pr.next_attempt_date
		FROM problems p
		JOIN progress pr ON p.id = pr.problem_id
		WHERE pr.next_attempt_date IS NOT NULL AND date(pr.next_attempt_date) <= date(?)
		ORDER BY pr.next_attempt_date, p."order"`,
		asOf.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due problems) > %w", err)
	}
	return due, nil
}

// Delete removes a problem; its progress row goes with it through the
// cascade. Returns false when no problem had the given id.
func (r *DBRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(delete problem %d) > %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected > 0, nil
}
