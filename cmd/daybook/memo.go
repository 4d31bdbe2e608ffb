// Memo commands: add, edit, remove, list. All operate on the active journal.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slatedeck/daybook/pkg/types"
)

var memoCmd = &cobra.Command{
	Use:   "memo",
	Short: "Manage memos in the active journal",
}

var memoAddCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a memo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		m, err := session.AddMemo(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("add memo: %w", err)
		}
		fmt.Printf("Added memo %d to %s\n", m.MemoKey, m.JournalTitle)
		return nil
	},
}

var memoEditCmd = &cobra.Command{
	Use:   "edit <key> <text>...",
	Short: "Replace a memo's text",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}

		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		err = session.EditMemo(key, strings.Join(args[1:], " "))
		switch {
		case errors.Is(err, types.ErrEmptyText):
			return fmt.Errorf("memo text must not be empty")
		case isNotFound(err):
			fmt.Fprintf(os.Stderr, "memo %d not found\n", key)
			os.Exit(exitUserError)
		case err != nil:
			return fmt.Errorf("edit memo: %w", err)
		}

		fmt.Printf("Updated memo %d\n", key)
		return nil
	},
}

var memoRmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a memo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}

		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := session.DeleteMemo(key); err != nil {
			return fmt.Errorf("delete memo: %w", err)
		}
		fmt.Printf("Deleted memo %d\n", key)
		return nil
	},
}

var memoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List memos in the active journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		memos, err := session.Memos()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(memos)
		}
		printTitle(session.ActiveJournal(), len(memos))
		printMemos(memos)
		return nil
	},
}

func init() {
	memoCmd.AddCommand(memoAddCmd)
	memoCmd.AddCommand(memoEditCmd)
	memoCmd.AddCommand(memoRmCmd)
	memoCmd.AddCommand(memoListCmd)
}
