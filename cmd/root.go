package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codeace",
	Short: "Coding practice with XP, streaks and AI code review",
	Long:  "CodeAce tracks solved problems, topic mastery, streaks and badges, and serves the practice API.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEACE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CODEACE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
