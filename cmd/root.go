package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "Music note reading trainer",
	Long:  "notequiz shows a note on a treble or bass staff and asks you to name it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NOTEQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: en or vi (overrides NOTEQUIZ_LANG and the saved preference)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := cmd.Flags().GetString("lang"); l != "" {
		cfg.Language = l
	}
	return cfg, cfg.Validate()
}

// resolveDBPath returns cfg.DBPath (set by --db or NOTEQUIZ_DB) or the
// default path under the XDG data home.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath(cfg.DataHome)
}
