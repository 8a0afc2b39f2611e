package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JXVIVI/track/internal/leetcode"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <problem URL>",
		Short: "Resolve a problem URL to its numeric question id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			resolver := leetcode.NewResolver(cfg.LeetCode.Endpoint)
			id, err := resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				// Resolution failures degrade to empty output; the
				// detail is only visible with --debug.
				slog.Debug("Failed to resolve problem URL", "url", args[0], "error", err)
			}
			fmt.Println(id)
			return nil
		},
	}
}
