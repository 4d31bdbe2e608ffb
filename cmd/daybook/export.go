// Export command: dump all collections to JSONL files.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var flagExportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all collections as JSONL",
	Long: `Export writes journals.jsonl, memos.jsonl, and tasks.jsonl to the
export directory (default: <data-dir>/export). Each file is written
atomically and replaces any previous export.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		dir := flagExportDir
		if dir == "" {
			dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			dir = filepath.Join(dataDir, "export")
		}

		if err := store.ExportJSONL(dir); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("Exported collections to %s\n", dir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "dir", "", "export directory (default: <data-dir>/export)")
}
