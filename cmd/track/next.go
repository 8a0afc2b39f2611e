package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JXVIVI/track/internal/problem"
)

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next unattempted problem to practice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			p, err := problem.NewDBRepository(db).NextUnattempted(cmd.Context())
			if err != nil {
				return err
			}
			if p == nil {
				color.Green("You have attempted every problem in the bank")
				return nil
			}

			fmt.Printf("Next up is: #%d - %s\n", p.Order, p.Name)
			fmt.Printf("LeetCode ID: %d\n", p.ID)
			if p.Difficulty.Valid {
				fmt.Printf("Difficulty: %s\n", p.Difficulty.String)
			}
			return nil
		},
	}
}

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List problems due for another attempt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			due, err := problem.NewDBRepository(db).FindDue(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Println("Nothing is due for review")
				return nil
			}

			for _, d := range due {
				fmt.Printf("%s  #%d - %s (LeetCode ID %d)\n",
					d.NextAttemptDate.Format("2006-01-02"), d.Order, d.Name, d.ID)
			}
			return nil
		},
	}
}
