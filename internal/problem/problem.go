// Package problem provides the problem domain model and repository.
package problem

import "database/sql"

// Difficulty is the source website's difficulty label for a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is one entry of the curated problem list. ID is the external
// LeetCode question id, Order its position in the list.
type Problem struct {
	ID         int64          `db:"id"`
	Order      int64          `db:"order"`
	Name       string         `db:"name"`
	Difficulty sql.NullString `db:"difficulty"`
	Week       sql.NullInt64  `db:"week"`
}
