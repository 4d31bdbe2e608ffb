// Package main provides the daybook CLI: a daily journal with memos and
// tasks, persisted in an embedded document store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
