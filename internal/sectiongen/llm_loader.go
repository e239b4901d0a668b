package sectiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/llm"
)

// LLMLoader implements Loader using the LLM provider.
type LLMLoader struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMLoader with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMLoader {
	return &LLMLoader{provider: provider, config: cfg}
}

// sectionOutput is the raw batch response before validation.
type sectionOutput struct {
	Questions []questionItem `json:"questions"`
}

// questionItem carries the superset of per-category fields; which ones
// are set depends on the requested category.
type questionItem struct {
	Symbols       []string `json:"symbols"`
	Sequence      []string `json:"sequence"`
	Statement     string   `json:"statement"`
	Question      string   `json:"question"`
	Target        string   `json:"target"`
	Transform     string   `json:"transform"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// LoadSection requests a full batch for one category and validates it
// strictly. A single bad question fails the whole section.
func (l *LLMLoader) LoadSection(ctx context.Context, category assessment.Category, count int) ([]assessment.Question, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("load section: unknown category %q", category)
	}
	if count <= 0 {
		return nil, fmt.Errorf("load section: count must be positive, got %d", count)
	}

	ctx = llm.WithPurpose(ctx, "section-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(category, count)},
		},
		Schema:      sectionSchema(category),
		MaxTokens:   l.config.MaxTokens,
		Temperature: l.config.Temperature,
	}

	resp, err := l.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("section generation failed: %w", err)
	}

	var raw sectionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse section response: %w", err)
	}

	if len(raw.Questions) != count {
		return nil, fmt.Errorf("section has %d questions, want %d", len(raw.Questions), count)
	}

	questions := make([]assessment.Question, 0, count)
	for i, item := range raw.Questions {
		q, err := buildQuestion(category, item)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}
