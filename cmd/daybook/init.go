// Init command: create the database and today's journal.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize daybook storage",
	Long: `Init creates the data directory, the database file with its three
collections and indexes, and today's journal. Running init against existing
storage is harmless; the schema is only created once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := storeActiveJournal(session.ActiveJournal()); err != nil {
			return err
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized daybook storage in %s\n", dataDir)
		fmt.Printf("Active journal: %s\n", session.ActiveJournal())
		return nil
	},
}
