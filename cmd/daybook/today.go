// Today command: ensure today's journal exists and show its contents.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatedeck/daybook/pkg/types"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Switch to today's journal and show it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		res, err := session.EnsureJournal(types.Today())
		if err != nil {
			return err
		}
		if err := storeActiveJournal(session.ActiveJournal()); err != nil {
			return err
		}

		memos, err := session.Memos()
		if err != nil {
			return err
		}
		tasks, err := session.Tasks()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"journal": res.Journal,
				"created": res.Created,
				"memos":   memos,
				"tasks":   tasks,
			})
		}

		if res.Created {
			fmt.Printf("Started journal %s\n\n", res.Journal.Title)
		}
		printTitle(res.Journal.Title, len(memos)+len(tasks))
		printMemos(memos)
		printTasks(tasks)
		return nil
	},
}
