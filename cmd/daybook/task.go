// Task commands: add, toggle done, remove, list. All operate on the active
// journal.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks in the active journal",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add an open task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		task, err := session.AddTask(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("add task: %w", err)
		}
		fmt.Printf("Added task %d to %s\n", task.TaskKey, task.JournalTitle)
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <key>",
	Short: "Toggle a task's done flag",
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

		task, err := session.ToggleTask(key)
		if isNotFound(err) {
			fmt.Fprintf(os.Stderr, "task %d not found\n", key)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("toggle task: %w", err)
		}

		if task.IsDone() {
			fmt.Printf("Completed task %d: %s\n", task.TaskKey, task.Title)
		} else {
			fmt.Printf("Reopened task %d: %s\n", task.TaskKey, task.Title)
		}
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a task",
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

		if err := session.DeleteTask(key); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		fmt.Printf("Deleted task %d\n", key)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the active journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, session, err := openSession()
		if err != nil {
			return err
		}
		defer store.Detach()

		tasks, err := session.Tasks()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(tasks)
		}
		printTitle(session.ActiveJournal(), len(tasks))
		printTasks(tasks)
		return nil
	},
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskListCmd)
}
