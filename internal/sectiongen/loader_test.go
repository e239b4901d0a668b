package sectiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/arjunv/cognify/internal/assessment"
	"github.com/arjunv/cognify/internal/llm"
)

func memoryBatchJSON(count int) json.RawMessage {
	items := make([]string, count)
	for i := range items {
		items[i] = `{"symbols": ["@", "#", "@", "$", "%", "$"], "correct_answer": "2"}`
	}
	return json.RawMessage(fmt.Sprintf(`{"questions": [%s]}`, strings.Join(items, ",")))
}

func verbalBatchJSON() json.RawMessage {
	return json.RawMessage(`{"questions": [
		{"prompt": "Finger is to hand as leaf is to ?", "options": ["tree", "root", "sky", "bark"], "correct_answer": "tree"},
		{"prompt": "Which does not belong: apple, banana, carrot, plum?", "options": ["apple", "banana", "carrot", "plum"], "correct_answer": "carrot"}
	]}`)
}

func TestLoadSection_Memory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: memoryBatchJSON(5)})
	loader := New(mock, DefaultConfig())

	qs, err := loader.LoadSection(context.Background(), assessment.CategoryMemory, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d has empty ID", i)
		}
		if q.Category != assessment.CategoryMemory {
			t.Errorf("question %d has category %q", i, q.Category)
		}
		if q.TimeLimit != assessment.QuestionTimeLimit {
			t.Errorf("question %d has limit %s", i, q.TimeLimit)
		}
		if _, ok := q.Payload.(assessment.MemoryPayload); !ok {
			t.Errorf("question %d has payload %T", i, q.Payload)
		}
	}
}

func TestLoadSection_Verbal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verbalBatchJSON()})
	loader := New(mock, DefaultConfig())

	qs, err := loader.LoadSection(context.Background(), assessment.CategoryVerbal, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if got := qs[0].Choices(); len(got) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(got))
	}
	if !qs[0].CheckAnswer("TREE") {
		t.Error("expected case-insensitive answer match")
	}
}

func TestLoadSection_WrongCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: memoryBatchJSON(3)})
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.CategoryMemory, 5)
	if err == nil {
		t.Fatal("expected error for short batch")
	}
}

func TestLoadSection_OneBadQuestionFailsBatch(t *testing.T) {
	content := json.RawMessage(`{"questions": [
		{"prompt": "Finger is to hand as leaf is to ?", "options": ["tree", "root", "sky", "bark"], "correct_answer": "tree"},
		{"prompt": "Broken one", "options": ["a", "b", "c", "d"], "correct_answer": "nope"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.CategoryVerbal, 2)
	if err == nil {
		t.Fatal("expected error when one question is invalid")
	}
	if !strings.Contains(err.Error(), "question 2") {
		t.Fatalf("error should name the bad question: %v", err)
	}
}

func TestLoadSection_OutlierMustBeInSequence(t *testing.T) {
	content := json.RawMessage(`{"questions": [
		{"sequence": ["3", "6", "9", "11", "12"], "correct_answer": "14"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.CategoryAttention, 1)
	if err == nil {
		t.Fatal("expected error for outlier missing from sequence")
	}
}

func TestLoadSection_SpatialTransformValidated(t *testing.T) {
	content := json.RawMessage(`{"questions": [
		{"target": "b", "transform": "stretch", "options": ["d", "p", "q", "b"], "correct_answer": "d"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.CategorySpatial, 1)
	if err == nil {
		t.Fatal("expected error for unknown transform")
	}
}

func TestLoadSection_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.CategoryMemory, 5)
	if err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestLoadSection_InvalidCategory(t *testing.T) {
	mock := llm.NewMockProvider()
	loader := New(mock, DefaultConfig())

	_, err := loader.LoadSection(context.Background(), assessment.Category("bogus"), 5)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestLoadSection_SchemaMatchesCategory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verbalBatchJSON()})
	loader := New(mock, DefaultConfig())

	if _, err := loader.LoadSection(context.Background(), assessment.CategoryVerbal, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	schema := mock.Calls[0].Schema
	if schema == nil {
		t.Fatal("expected a schema on the request")
	}
	props := schema.Definition["properties"].(map[string]any)
	items := props["questions"].(map[string]any)["items"].(map[string]any)
	itemProps := items["properties"].(map[string]any)
	if _, ok := itemProps["prompt"]; !ok {
		t.Error("verbal schema should include prompt")
	}
	if _, ok := itemProps["symbols"]; ok {
		t.Error("verbal schema should not include symbols")
	}
}
