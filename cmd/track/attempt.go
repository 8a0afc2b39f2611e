package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JXVIVI/track/internal/problem"
	"github.com/JXVIVI/track/internal/progress"
)

func newAttemptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attempt <problem id> <rating 1-5> [date YYYY-MM-DD]",
		Short: "Log an attempt for a problem (1=ShortFail, 2=LongFail, 3=Messy, 4=Hard, 5=Easy)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			problemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("problem id %q is not a number: %w", args[0], err)
			}
			ratingNum, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating %q is not a number: %w", args[1], err)
			}
			rating, err := progress.ParseRating(ratingNum)
			if err != nil {
				return err
			}
			var attemptDate time.Time
			if len(args) == 3 {
				attemptDate, err = time.Parse("2006-01-02", args[2])
				if err != nil {
					return fmt.Errorf("failed to parse date %q, expected YYYY-MM-DD: %w", args[2], err)
				}
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			ctx := cmd.Context()
			problemRepo := problem.NewDBRepository(db)
			p, err := problemRepo.FindByID(ctx, problemID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no problem with id %d; run `track import` first", problemID)
			}

			progressRepo := progress.NewDBRepository(db)
			record, err := progressRepo.Fetch(ctx, problemID)
			if err != nil {
				return err
			}

			if record == nil {
				newRecord := progress.NewRecord(problemID, rating, attemptDate)
				record = &newRecord
				if err := progressRepo.AddOrReplace(ctx, record); err != nil {
					return err
				}
			} else {
				record.Apply(rating, attemptDate)
				if err := progressRepo.Update(ctx, record); err != nil {
					return err
				}
			}

			color.Green("Logged attempt %d for %q with rating %s", record.NumberOfAttempts, p.Name, rating)
			if record.NextAttemptDate.Valid {
				fmt.Printf("Next attempt due %s\n", record.NextAttemptDate.Time.Format("2006-01-02"))
			}
			return nil
		},
	}
}
