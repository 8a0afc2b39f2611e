package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JXVIVI/track/internal/problem"
	"github.com/JXVIVI/track/internal/progress"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all problems with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			ctx := cmd.Context()
			problems, err := problem.NewDBRepository(db).FindAll(ctx)
			if err != nil {
				return err
			}
			records, err := progress.NewDBRepository(db).FindAll(ctx)
			if err != nil {
				return err
			}
			byProblem := make(map[int64]progress.Record, len(records))
			for _, record := range records {
				byProblem[record.ProblemID] = record
			}

			for _, p := range problems {
				difficulty := "-"
				if p.Difficulty.Valid {
					difficulty = p.Difficulty.String
				}

				record, attempted := byProblem[p.ID]
				if !attempted {
					fmt.Printf("#%-4d %-40s %-8s unattempted\n", p.Order, p.Name, difficulty)
					continue
				}

				next := "-"
				if record.NextAttemptDate.Valid {
					next = record.NextAttemptDate.Time.Format("2006-01-02")
				}
				fmt.Printf("#%-4d %-40s %-8s %s x%d, last %s, next %s\n",
					p.Order, p.Name, difficulty,
					ratingColor(record.AttemptRating),
					record.NumberOfAttempts,
					record.LastAttempted.Format("2006-01-02"),
					next,
				)
			}
			return nil
		},
	}
}

func ratingColor(rating progress.Rating) string {
	switch rating {
	case progress.RatingEasy:
		return color.GreenString(string(rating))
	case progress.RatingHard, progress.RatingMessy:
		return color.YellowString(string(rating))
	default:
		return color.RedString(string(rating))
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <problem id>",
		Short: "Remove a problem and its progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("problem id %q is not a number: %w", args[0], err)
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			deleted, err := problem.NewDBRepository(db).Delete(cmd.Context(), problemID)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("no problem with id %d", problemID)
			}
			fmt.Printf("Removed problem %d\n", problemID)
			return nil
		},
	}
}
