package assessment

import (
	"strings"
	"testing"
)

func TestCheckAnswerCaseInsensitive(t *testing.T) {
	q := Question{CorrectAnswer: "Tom"}

	tests := []struct {
		selected string
		want     bool
	}{
		{"Tom", true},
		{"tom", true},
		{"TOM", true},
		{" tom ", true},
		{"Tim", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := q.CheckAnswer(tt.selected); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.selected, got, tt.want)
		}
	}
}

func TestContextStringPerCategory(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		contain string
	}{
		{
			"memory",
			Question{Category: CategoryMemory, Payload: MemoryPayload{Symbols: []string{"◆", "◆", "●"}}},
			"◆ ◆ ●",
		},
		{
			"attention",
			Question{Category: CategoryAttention, Payload: AttentionPayload{Sequence: []string{"7", "7", "1"}}},
			"outlier",
		},
		{
			"reasoning",
			Question{Category: CategoryReasoning, Payload: ReasoningPayload{Statement: "Tom is taller than Jim.", Question: "Who is tallest?"}},
			"Who is tallest?",
		},
		{
			"spatial",
			Question{Category: CategorySpatial, Payload: SpatialPayload{Target: "◢", Transform: "mirror"}},
			"mirror",
		},
		{
			"verbal",
			Question{Category: CategoryVerbal, Payload: VerbalPayload{Prompt: "Bird is to sky as fish is to?"}},
			"fish",
		},
	}
	for _, tt := range tests {
		got := tt.q.ContextString()
		if got == "" {
			t.Errorf("%s: empty context string", tt.name)
		}
		if !strings.Contains(got, tt.contain) {
			t.Errorf("%s: ContextString() = %q, want it to contain %q", tt.name, got, tt.contain)
		}
	}
}

func TestChoicesPerCategory(t *testing.T) {
	memory := Question{Payload: MemoryPayload{Symbols: []string{"a"}}}
	if memory.Choices() != nil {
		t.Error("memory questions are typed, Choices should be nil")
	}

	attention := Question{Payload: AttentionPayload{Sequence: []string{"x", "y"}}}
	if len(attention.Choices()) != 2 {
		t.Error("attention choices should be the sequence itself")
	}

	verbal := Question{Payload: VerbalPayload{Options: []string{"a", "b", "c", "d"}}}
	if len(verbal.Choices()) != 4 {
		t.Error("verbal choices should be the options")
	}
}
