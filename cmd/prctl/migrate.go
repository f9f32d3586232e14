package main

import (
	"fmt"

	"github.com/2beens/gymprs/internal/db"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, dbParams, err := loadConfig()
			if err != nil {
				return err
			}
			version, err := db.Migrate(dbParams)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return err
		},
	}
}
