// Root command for the daybook CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slatedeck/daybook/internal/paths"
	"github.com/slatedeck/daybook/pkg/daybook"
)

// Exit codes: 1 for user errors, 2 for storage failures.
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the loaded config.yaml values; configDir is where they came
// from. Both are set by PersistentPreRunE for all subcommands.
var (
	cfg       *viper.Viper
	configDir string
)

var rootCmd = &cobra.Command{
	Use:     "daybook",
	Short:   "Daybook is a daily journal with memos and tasks",
	Version: daybook.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		configDir = dir

		cfg, err = loadConfig(configDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > DAYBOOK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DAYBOOK_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
