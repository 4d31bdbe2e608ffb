// Version command for the daybook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatedeck/daybook/pkg/daybook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daybook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("daybook", daybook.Version)
	},
}
