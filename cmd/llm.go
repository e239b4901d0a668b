package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunv/cognify/internal/llm"
	"github.com/arjunv/cognify/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration and request log",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		source := "COGNIFY_LLM_PROVIDER"
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("Provider:  (none)")
				fmt.Printf("Error:     %v\n", err)
				return nil
			}
			cfg = discovered
			source = "API key discovery"
		}

		model := ""
		switch cfg.Provider {
		case "anthropic":
			model = cfg.Anthropic.Model
		case "openai":
			model = cfg.OpenAI.Model
		case "gemini":
			model = cfg.Gemini.Model
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		if model != "" {
			fmt.Printf("Model:     %s\n", model)
		}
		fmt.Printf("Selected:  via %s\n", source)
		return nil
	},
}

var llmLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.LLMLogRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query llm requests: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, rec := range records {
			if purpose != "" && rec.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !rec.Success {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				rec.Purpose,
				truncate(rec.Model, 28),
				rec.InputTokens,
				rec.OutputTokens,
				rec.LatencyMs,
				ok,
			)
			if rec.ErrorMessage != "" {
				fmt.Printf("    %s\n", truncate(rec.ErrorMessage, 90))
			}
		}
		return nil
	},
}

func init() {
	llmLogCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmLogCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (section-gen, analysis)")

	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmLogCmd)
}
