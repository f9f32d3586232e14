package main

import (
	"context"

	"github.com/2beens/gymprs/internal/gymstats/records"

	"github.com/spf13/cobra"
)

func newRecordsCmd() *cobra.Command {
	var (
		flags       scopeFlags
		currentOnly bool
		deleted     bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the personal records of a scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			scope, err := flags.scope()
			if err != nil {
				return err
			}

			ctx := context.Background()
			engine, closeEngine, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer closeEngine()

			fetch := engine.Ledger.Records
			if deleted {
				fetch = engine.Ledger.DeletedRecords
			}
			recs, err := fetch(ctx, scope)
			if err != nil {
				return err
			}
			if currentOnly && !deleted {
				recs = records.Current(recs)
			}
			return renderRecords(cmd.OutOrStdout(), recs, format)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&currentOnly, "current", false, "only the current record of every chain")
	cmd.Flags().BoolVar(&deleted, "deleted", false, "records replaced by earlier rebuilds")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")
	return cmd
}
