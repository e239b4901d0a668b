package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/llm"
)

func sampleResponses() []assessment.Response {
	return []assessment.Response{
		{
			QuestionID:    "q1",
			Category:      assessment.CategoryMemory,
			Selected:      "2",
			CorrectAnswer: "2",
			TimeTakenMs:   1800,
			IsCorrect:     true,
			Context:       "Symbols shown: @ # @ $ % $",
		},
		{
			QuestionID:    "q2",
			Category:      assessment.CategoryMemory,
			Selected:      "3",
			CorrectAnswer: "1",
			TimeTakenMs:   4100,
			IsCorrect:     false,
			Context:       "Symbols shown: & * & ! ?",
		},
		{
			QuestionID:    "q3",
			Category:      assessment.CategoryVerbal,
			Selected:      "tree",
			CorrectAnswer: "tree",
			TimeTakenMs:   6200,
			IsCorrect:     true,
			TimedOut:      true,
			Context:       "Finger is to hand as leaf is to ?",
		},
	}
}

func validAnalysisJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "A solid run with quick recall.",
		"strengths": ["Verbal reasoning"],
		"weaknesses": ["Memory under time pressure"],
		"recommendations": ["Practice pair counting daily."],
		"explanations": [
			{"context": "Symbols shown: & * & ! ?", "note": "Counted the unmatched symbols as a pair."}
		]
	}`)
}

func TestAnalyze_LLMResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	svc := NewService(mock, DefaultConfig())

	result := svc.Analyze(context.Background(), sampleResponses())
	if result.Fallback {
		t.Fatal("expected LLM result, got fallback")
	}
	if result.Summary != "A solid run with quick recall." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
	if note := result.Explanations["Symbols shown: & * & ! ?"]; !strings.Contains(note, "unmatched") {
		t.Fatalf("expected explanation keyed by context, got %q", note)
	}
	if result.CategoryScores[assessment.CategoryMemory] != 50 {
		t.Fatalf("expected memory 50%%, got %d", result.CategoryScores[assessment.CategoryMemory])
	}
	if result.CategoryScores[assessment.CategoryVerbal] != 100 {
		t.Fatalf("expected verbal 100%%, got %d", result.CategoryScores[assessment.CategoryVerbal])
	}
}

func TestAnalyze_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	result := svc.Analyze(context.Background(), sampleResponses())
	if !result.Fallback {
		t.Fatal("expected fallback result")
	}
	if !strings.Contains(result.Summary, "2 of 3") {
		t.Fatalf("unexpected fallback summary: %q", result.Summary)
	}
}

func TestAnalyze_FallbackOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary": ""}`)})
	svc := NewService(mock, DefaultConfig())

	result := svc.Analyze(context.Background(), sampleResponses())
	if !result.Fallback {
		t.Fatal("expected fallback for empty summary")
	}
}

func TestAnalyze_NilProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	result := svc.Analyze(context.Background(), sampleResponses())
	if !result.Fallback {
		t.Fatal("expected fallback with nil provider")
	}
}

func TestPlaceholder_Empty(t *testing.T) {
	result := Placeholder(nil)
	if !result.Fallback {
		t.Fatal("expected fallback")
	}
	if result.Summary != "No responses recorded." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
}

func TestPlaceholder_StrengthsAndWeaknesses(t *testing.T) {
	responses := []assessment.Response{
		{Category: assessment.CategoryMemory, IsCorrect: true},
		{Category: assessment.CategoryMemory, IsCorrect: true},
		{Category: assessment.CategoryAttention, IsCorrect: false},
		{Category: assessment.CategoryAttention, IsCorrect: false},
	}

	result := Placeholder(responses)
	if len(result.Strengths) != 1 || !strings.Contains(result.Strengths[0], "Memory") {
		t.Fatalf("unexpected strengths: %v", result.Strengths)
	}
	if len(result.Weaknesses) != 1 || !strings.Contains(result.Weaknesses[0], "Attention") {
		t.Fatalf("unexpected weaknesses: %v", result.Weaknesses)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestBuildUserMessage_IncludesTimeout(t *testing.T) {
	msg, err := buildUserMessage(sampleResponses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "after timeout") {
		t.Fatal("expected timeout marker in prompt")
	}
	if !strings.Contains(msg, "Memory: 1/2") {
		t.Fatalf("expected per-category line, got:\n%s", msg)
	}
}
