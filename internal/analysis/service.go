package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/llm"
)

// Config holds configuration for the analysis service.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Service produces the end-of-run analysis. When the LLM call fails for
// any reason the service degrades to a locally computed result, so a
// completed run always gets an analysis.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an analysis service. Provider may be nil, in which
// case every analysis is the local fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze turns the completed run's responses into a Result. It never
// fails: LLM errors substitute the deterministic fallback.
func (s *Service) Analyze(ctx context.Context, responses []assessment.Response) *Result {
	if s.provider == nil {
		return Placeholder(responses)
	}

	result, err := s.llmAnalyze(ctx, responses)
	if err != nil {
		return Placeholder(responses)
	}
	return result
}

// analysisOutput is the raw LLM response.
type analysisOutput struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Explanations    []struct {
		Context string `json:"context"`
		Note    string `json:"note"`
	} `json:"explanations"`
}

func (s *Service) llmAnalyze(ctx context.Context, responses []assessment.Response) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "analysis")

	userMsg, err := buildUserMessage(responses)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ResultSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if raw.Summary == "" {
		return nil, fmt.Errorf("analysis response has empty summary")
	}

	result := &Result{
		Summary:         raw.Summary,
		Strengths:       raw.Strengths,
		Weaknesses:      raw.Weaknesses,
		Recommendations: raw.Recommendations,
		CategoryScores:  categoryScores(responses),
		Explanations:    make(map[string]string, len(raw.Explanations)),
	}
	for _, e := range raw.Explanations {
		result.Explanations[e.Context] = e.Note
	}

	return result, nil
}

// categoryScores is computed locally in both paths so the numbers on
// screen always match the ledger.
func categoryScores(responses []assessment.Response) map[assessment.Category]int {
	scores := make(map[assessment.Category]int)
	for _, cat := range orderedCategories(responses) {
		correct, total := 0, 0
		for _, r := range responses {
			if r.Category != cat {
				continue
			}
			total++
			if r.IsCorrect {
				correct++
			}
		}
		if total > 0 {
			scores[cat] = roundPercent(correct, total)
		}
	}
	return scores
}
