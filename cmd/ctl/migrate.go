package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE:  runMigrate,
}

// Opening the store applies the schema.
func runMigrate(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer e.close()

	fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", e.store.Driver)
	return nil
}
