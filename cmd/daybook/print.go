// Styled terminal output for the daybook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/slatedeck/daybook/pkg/types"
)

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printTitle(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func printNone() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("  none")
}

func printJournals(journals []*types.Journal, active string) {
	tbl := uitable.New()
	tbl.AddRow("KEY", "TITLE", "CREATED", "")
	for _, j := range journals {
		marker := ""
		if j.Title == active {
			marker = "*"
		}
		tbl.AddRow(j.JournalKey, j.Title, j.CreatedAt.Format(time.RFC3339), marker)
	}
	fmt.Println(tbl)
}

func printMemos(memos []*types.Memo) {
	if len(memos) == 0 {
		printNone()
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow("KEY", "MEMO")
	for _, m := range memos {
		tbl.AddRow(m.MemoKey, m.Text)
	}
	fmt.Println(tbl)
}

func printTasks(tasks []*types.Task) {
	if len(tasks) == 0 {
		printNone()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.AddRow("KEY", "", "TASK")
	for _, task := range tasks {
		if task.IsDone() {
			tbl.AddRow(task.TaskKey, "[x]", done.Sprint(task.Title))
		} else {
			tbl.AddRow(task.TaskKey, "[ ]", open.Sprint(task.Title))
		}
	}
	fmt.Println(tbl)
}
