// Package bank loads curated problem lists from JSON files and
// populates the problems table from them.
package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/JXVIVI/track/internal/problem"
)

// Entry is one problem of a bank file. The id may be omitted, in which
// case it is resolved from the problem URL during population.
type Entry struct {
	ID         int64   `json:"id"`
	Order      int64   `json:"order"`
	Name       string  `json:"name"`
	Difficulty *string `json:"difficulty"`
	Week       *int64  `json:"week"`
	URL        string  `json:"url"`
}

// Load reads the bank file <dir>/<name> into entries.
func Load(dir, name string) ([]Entry, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var entries []Entry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("bank %s: json.Decode > %w", name, err)
	}
	return entries, nil
}

// ProblemInserter is the slice of the problem repository population needs.
type ProblemInserter interface {
	Insert(ctx context.Context, p *problem.Problem) error
}

// SlugResolver resolves a problem URL to its question id.
type SlugResolver interface {
	Resolve(ctx context.Context, problemURL string) (string, error)
}

// Result reports what a population run did.
type Result struct {
	Inserted int
	Skipped  int
}

// Populate inserts every bank entry, resolving missing ids through the
// resolver. Entries whose id cannot be resolved are skipped with a
// warning rather than failing the run.
func Populate(ctx context.Context, inserter ProblemInserter, resolver SlugResolver, entries []Entry) (Result, error) {
	var result Result
	for _, entry := range entries {
		id, err := resolveID(ctx, resolver, entry)
		if err != nil {
			slog.Warn("Skipping problem with unresolvable id", "name", entry.Name, "url", entry.URL, "error", err)
			result.Skipped++
			continue
		}

		p := entry.toProblem(id)
		if err := inserter.Insert(ctx, &p); err != nil {
			return result, fmt.Errorf("inserter.Insert(%q) > %w", entry.Name, err)
		}
		result.Inserted++
	}
	return result, nil
}

func resolveID(ctx context.Context, resolver SlugResolver, entry Entry) (int64, error) {
	if entry.ID != 0 {
		return entry.ID, nil
	}

	raw, err := resolver.Resolve(ctx, entry.URL)
	if err != nil {
		return 0, fmt.Errorf("resolver.Resolve > %w", err)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("question id %q is not a number: %w", raw, err)
	}
	return id, nil
}

func (e Entry) toProblem(id int64) problem.Problem {
	p := problem.Problem{
		ID:    id,
		Order: e.Order,
		Name:  e.Name,
	}
	if e.Difficulty != nil {
		p.Difficulty = sql.NullString{String: *e.Difficulty, Valid: true}
	}
	if e.Week != nil {
		p.Week = sql.NullInt64{Int64: *e.Week, Valid: true}
	}
	return p
}
