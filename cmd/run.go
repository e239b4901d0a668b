package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunv/cognify/internal/analysis"
	"github.com/arjunv/cognify/internal/app"
	"github.com/arjunv/cognify/internal/llm"
	"github.com/arjunv/cognify/internal/sectiongen"
	"github.com/arjunv/cognify/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Question generation needs a configured provider. Fail before the
	// alt screen takes over so the message stays readable.
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMLogRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\nSet COGNIFY_LLM_PROVIDER and the matching API key (or ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY)", err)
	}

	deps := app.Deps{
		Loader:   sectiongen.New(provider, sectiongen.DefaultConfig()),
		Analyzer: analysis.NewService(provider, analysis.DefaultConfig()),
		History:  st.HistoryRepo(),
	}
	return app.Run(deps)
}
