package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent session results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.EventRepo().RecentSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Start one with `wordgym practice`.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-6s  %-9s  %-8s  %s\n",
			"When", "Variant", "Score", "Correct", "Accuracy", "Duration")
		fmt.Println(strings.Repeat("─", 75))

		for _, s := range sessions {
			fmt.Printf("%-19s  %-14s  %-6d  %4d/%-4d  %6.0f%%  %dm%02ds\n",
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				s.Variant,
				s.Score,
				s.CorrectCount,
				s.TotalPlayed,
				s.Accuracy*100,
				s.DurationSecs/60,
				s.DurationSecs%60,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Max sessions to show")
}
