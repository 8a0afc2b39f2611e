package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JXVIVI/track/internal/bank"
	"github.com/JXVIVI/track/internal/leetcode"
	"github.com/JXVIVI/track/internal/problem"
)

func newImportCommand() *cobra.Command {
	var bankDir string

	cmd := &cobra.Command{
		Use:   "import <bank file>",
		Short: "Populate the problem bank from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			dir := cfg.Bank.Directory
			if bankDir != "" {
				dir = bankDir
			}

			entries, err := bank.Load(dir, args[0])
			if err != nil {
				return fmt.Errorf("bank.Load() > %w", err)
			}

			problemRepo := problem.NewDBRepository(db)
			resolver := leetcode.NewResolver(cfg.LeetCode.Endpoint)
			result, err := bank.Populate(cmd.Context(), problemRepo, resolver, entries)
			if err != nil {
				return fmt.Errorf("bank.Populate() > %w", err)
			}

			fmt.Printf("Imported %d problems from %s (%d skipped)\n", result.Inserted, args[0], result.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&bankDir, "dir", "", "directory containing bank files (overrides config)")

	return cmd
}
