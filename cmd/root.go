package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tanmayb/wordgym/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordgym",
	Short: "Vocabulary trainer for the terminal",
	Long:  "Wordgym — adaptive vocabulary quizzes in the terminal, with AI-generated context questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (overrides WORDGYM_DB)")

	rootCmd.AddCommand(practiceCmd, wordsCmd, statsCmd, llmCmd, versionCmd)
}

// resolveDBPath prefers --db, then WORDGYM_DB, then the XDG data dir.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
