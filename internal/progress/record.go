// Package progress tracks attempts against problems and schedules the
// next review date for each one.
package progress

import (
	"database/sql"
	"fmt"
	"time"
)

// Rating grades how an attempt went. Stored as TEXT in the progress table.
type Rating string

const (
	RatingShortFail Rating = "ShortFail"
	RatingLongFail  Rating = "LongFail"
	RatingMessy     Rating = "Messy"
	RatingHard      Rating = "Hard"
	RatingEasy      Rating = "Easy"
)

// ParseRating converts the 1-5 rating taken on the command line.
func ParseRating(n int) (Rating, error) {
	switch n {
	case 1:
		return RatingShortFail, nil
	case 2:
		return RatingLongFail, nil
	case 3:
		return RatingMessy, nil
	case 4:
		return RatingHard, nil
	case 5:
		return RatingEasy, nil
	}
	return "", fmt.Errorf("rating must be between 1 and 5, got %d", n)
}

// Record is the single progress row a problem may have.
type Record struct {
	ProblemID        int64        `db:"problem_id"`
	LastAttempted    time.Time    `db:"last_attempted"`
	AttemptRating    Rating       `db:"attempt_rating"`
	NextAttemptDate  sql.NullTime `db:"next_attempt_date"`
	NumberOfAttempts int64        `db:"number_of_attempts"`
}

// NewRecord builds the record for a problem's first attempt. A zero
// attemptDate means today.
func NewRecord(problemID int64, rating Rating, attemptDate time.Time) Record {
	day := normalizeDay(attemptDate)
	return Record{
		ProblemID:        problemID,
		LastAttempted:    day,
		AttemptRating:    rating,
		NextAttemptDate:  nextAttemptDate(day, rating, 1),
		NumberOfAttempts: 1,
	}
}

// Apply records a subsequent attempt: the rating and date are
// overwritten, the counter incremented, and the next review rescheduled.
func (r *Record) Apply(rating Rating, attemptDate time.Time) {
	day := normalizeDay(attemptDate)
	r.AttemptRating = rating
	r.NumberOfAttempts++
	r.LastAttempted = day
	r.NextAttemptDate = nextAttemptDate(day, rating, r.NumberOfAttempts)
}

func nextAttemptDate(day time.Time, rating Rating, attempts int64) sql.NullTime {
	return sql.NullTime{
		Time:  day.AddDate(0, 0, NextInterval(rating, attempts)),
		Valid: true,
	}
}

// normalizeDay truncates to a calendar day in UTC; the schema only
// stores dates.
func normalizeDay(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
