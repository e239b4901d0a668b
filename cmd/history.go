package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunv/cognify/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessment runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.HistoryRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No assessment runs recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %9s  %5s  %s\n",
			"Date", "Mode", "Questions", "Score", "Summary")
		fmt.Println(strings.Repeat("─", 96))

		for _, rec := range records {
			fmt.Printf("%-19s  %-8s  %9d  %4d%%  %s\n",
				rec.Date.Local().Format("2006-01-02 15:04:05"),
				string(rec.Mode),
				rec.TotalQuestions,
				rec.Score,
				truncate(rec.AnalysisSummary, 48),
			)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show (0 = all)")
}
