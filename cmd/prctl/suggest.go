package main

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var (
		flags  scopeFlags
		asOf   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next session of a scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			scope, err := flags.scope()
			if err != nil {
				return err
			}
			asOfTime, err := gymstats.ParseAsOf(asOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of: %w", err)
			}

			ctx := context.Background()
			engine, closeEngine, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer closeEngine()

			suggestion, err := engine.Suggester.SuggestNext(ctx, scope.UserID, scope.ExerciseID, asOfTime)
			if err != nil {
				return err
			}
			return renderSuggestion(cmd.OutOrStdout(), suggestion, format)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&asOf, "as-of", "", "only consider logs up to this date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	return cmd
}
