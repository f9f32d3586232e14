package main

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/events"

	"github.com/spf13/cobra"
)

func newRecalculateCmd() *cobra.Command {
	var (
		flags   scopeFlags
		pending bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Rebuild the record ledger of a scope, or of all pending scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			ctx := context.Background()
			engine, closeEngine, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer closeEngine()

			if pending {
				repaired, err := engine.Repairer.RepairPending(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "repaired %d pending scope(s)\n", repaired)
				return err
			}

			scope, err := flags.scope()
			if err != nil {
				return err
			}
			outcome, err := engine.Listener.Recalculate(ctx, scope, events.ReasonManual)
			if err != nil {
				return err
			}
			return renderOutcome(cmd.OutOrStdout(), scope, outcome, format)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&pending, "pending", false, "repair one batch of pending scopes instead of a single scope")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	return cmd
}
