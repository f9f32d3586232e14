package main

import (
	"context"
	"fmt"

	"github.com/2beens/gymprs/internal/gymstats/records"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var flags scopeFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the record chains of a scope",
		Long:  "verify checks that every record chain of the scope is linked in achieved-at order with exactly one current record. Exits non-zero when a chain is broken.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			recs, err := engine.Ledger.Records(ctx, scope)
			if err != nil {
				return err
			}
			if err := records.VerifyChain(recs); err != nil {
				return fmt.Errorf("scope [%s]: %w (run prctl recalculate to rebuild it)", scope, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "scope [%s] ok: %d records in %d chains\n", scope, len(recs), len(records.Chains(recs)))
			return err
		},
	}

	flags.register(cmd, true)
	return cmd
}
