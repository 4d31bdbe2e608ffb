// Journal commands: list, switch, and cascade delete.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journals",
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all journals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		journals, err := session.Journals()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(journals)
		}
		printJournals(journals, session.ActiveJournal())
		return nil
	},
}

var journalUseCmd = &cobra.Command{
	Use:   "use <title>",
	Short: "Switch the active journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		session.SwitchJournal(args[0])
		if err := storeActiveJournal(args[0]); err != nil {
			return err
		}
		fmt.Printf("Active journal: %s\n", args[0])
		return nil
	},
}

var journalRmCmd = &cobra.Command{
	Use:   "rm <title>",
	Short: "Delete a journal and all of its memos and tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := session.DeleteJournalCascade(title); err != nil {
			fmt.Fprintf(os.Stderr, "delete journal %q: %s\n", title, err)
			os.Exit(exitSysError)
		}
		if err := storeActiveJournal(session.ActiveJournal()); err != nil {
			return err
		}

		fmt.Printf("Deleted journal %s\n", title)
		fmt.Printf("Active journal: %s\n", session.ActiveJournal())
		return nil
	},
}

func init() {
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalUseCmd)
	journalCmd.AddCommand(journalRmCmd)
}
